package ports

import (
	"context"
	"iter"
	"time"

	"github.com/librarykit/lending-system/internal/core/domain"
)

// AddBookInput carries a new catalog entry from the command surface.
type AddBookInput struct {
	ID     string `validate:"required"`
	Title  string `validate:"required"`
	Author string `validate:"required"`
}

// AddUserInput carries a new roster entry. Type is checked against the known
// user types by the service, not by tag, so that it yields ErrInvalidUserType.
type AddUserInput struct {
	ID   string `validate:"required"`
	Name string `validate:"required"`
	Type string
}

// BorrowInput is one borrow request. Now is the caller's clock reading.
type BorrowInput struct {
	UserID string    `validate:"required"`
	BookID string    `validate:"required"`
	Now    time.Time `validate:"required"`
}

// ReturnInput is one return request.
type ReturnInput struct {
	UserID string    `validate:"required"`
	BookID string    `validate:"required"`
	Now    time.Time `validate:"required"`
}

// BookView is a catalog listing row.
type BookView struct {
	ID     string
	Title  string
	Author string
	Status string
}

// UserView is a roster listing row.
type UserView struct {
	ID        string
	Name      string
	Type      string
	LoanCount int
}

// BorrowedEntry is one row of the borrowed report.
type BorrowedEntry struct {
	UserName string
	BookID   string
	DueDate  domain.Date
}

// OverdueEntry is one row of the overdue report.
type OverdueEntry struct {
	UserName    string
	BookID      string
	DueDate     domain.Date
	OverdueDays int
}

// CatalogService manages the book catalog.
type CatalogService interface {
	AddBook(ctx context.Context, in AddBookInput) error
	FindBook(id string) (domain.Book, error)
	ListBooks() []BookView
}

// RosterService manages library users.
type RosterService interface {
	AddUser(ctx context.Context, in AddUserInput) error
	FindUser(id string) (domain.User, error)
	ListUsers() []UserView
}

// LendingService performs the borrow and return transitions.
type LendingService interface {
	// Borrow lends the book and returns its due date.
	Borrow(ctx context.Context, in BorrowInput) (domain.Date, error)
	// Return takes the book back and returns the fine owed.
	Return(ctx context.Context, in ReturnInput) (float64, error)
}

// ReportService derives read-only views from the current lending state. Each
// call re-reads state, so the sequences can be ranged over repeatedly.
type ReportService interface {
	BorrowedReport() iter.Seq[BorrowedEntry]
	OverdueReport(now time.Time) iter.Seq[OverdueEntry]
}
