package cli_test

import (
	"context"
	"iter"
	"slices"
	"time"

	"github.com/librarykit/lending-system/internal/core/domain"
	"github.com/librarykit/lending-system/internal/core/ports"
)

type fakeCatalog struct {
	added []ports.AddBookInput
	books []ports.BookView
	err   error
}

func (f *fakeCatalog) AddBook(_ context.Context, in ports.AddBookInput) error {
	if f.err != nil {
		return f.err
	}
	f.added = append(f.added, in)
	return nil
}

func (f *fakeCatalog) FindBook(id string) (domain.Book, error) {
	return domain.Book{}, domain.ErrBookNotFound
}

func (f *fakeCatalog) ListBooks() []ports.BookView { return f.books }

type fakeRoster struct {
	added []ports.AddUserInput
	users []ports.UserView
	err   error
}

func (f *fakeRoster) AddUser(_ context.Context, in ports.AddUserInput) error {
	if f.err != nil {
		return f.err
	}
	f.added = append(f.added, in)
	return nil
}

func (f *fakeRoster) FindUser(id string) (domain.User, error) {
	return domain.User{}, domain.ErrUserNotFound
}

func (f *fakeRoster) ListUsers() []ports.UserView { return f.users }

type fakeLending struct {
	borrows []ports.BorrowInput
	returns []ports.ReturnInput
	due     domain.Date
	fine    float64
	err     error
}

func (f *fakeLending) Borrow(_ context.Context, in ports.BorrowInput) (domain.Date, error) {
	f.borrows = append(f.borrows, in)
	return f.due, f.err
}

func (f *fakeLending) Return(_ context.Context, in ports.ReturnInput) (float64, error) {
	f.returns = append(f.returns, in)
	return f.fine, f.err
}

type fakeReports struct {
	borrowed  []ports.BorrowedEntry
	overdue   []ports.OverdueEntry
	overdueAt []time.Time
}

func (f *fakeReports) BorrowedReport() iter.Seq[ports.BorrowedEntry] {
	return slices.Values(f.borrowed)
}

func (f *fakeReports) OverdueReport(now time.Time) iter.Seq[ports.OverdueEntry] {
	f.overdueAt = append(f.overdueAt, now)
	return slices.Values(f.overdue)
}
