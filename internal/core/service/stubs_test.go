package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/librarykit/lending-system/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubBookRepo struct {
	saved   [][]domain.Book
	saveErr error
}

func (r *stubBookRepo) LoadBooks(_ context.Context) ([]domain.Book, error) {
	if len(r.saved) == 0 {
		return []domain.Book{}, nil
	}
	return r.saved[len(r.saved)-1], nil
}

func (r *stubBookRepo) SaveBooks(_ context.Context, books []domain.Book) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, books)
	return nil
}

func (r *stubBookRepo) last() []domain.Book {
	if len(r.saved) == 0 {
		return nil
	}
	return r.saved[len(r.saved)-1]
}

type stubUserRepo struct {
	saved   [][]domain.User
	saveErr error
}

func (r *stubUserRepo) LoadUsers(_ context.Context) ([]domain.User, error) {
	if len(r.saved) == 0 {
		return []domain.User{}, nil
	}
	return r.saved[len(r.saved)-1], nil
}

func (r *stubUserRepo) SaveUsers(_ context.Context, users []domain.User) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, users)
	return nil
}

func (r *stubUserRepo) last() []domain.User {
	if len(r.saved) == 0 {
		return nil
	}
	return r.saved[len(r.saved)-1]
}

type stubTxLog struct {
	records   []domain.TransactionRecord
	appendErr error
}

func (l *stubTxLog) Append(_ context.Context, rec domain.TransactionRecord) error {
	if l.appendErr != nil {
		return l.appendErr
	}
	l.records = append(l.records, rec)
	return nil
}

type stubMetrics struct {
	borrows  []string
	returns  []string
	fines    float64
	failures []string // "operation:reason"
	overdue  []int
}

func (m *stubMetrics) BorrowRecorded(userType string) { m.borrows = append(m.borrows, userType) }

func (m *stubMetrics) ReturnRecorded(userType string, fine float64) {
	m.returns = append(m.returns, userType)
	m.fines += fine
}

func (m *stubMetrics) FailureRecorded(operation, reason string) {
	m.failures = append(m.failures, operation+":"+reason)
}

func (m *stubMetrics) OverdueObserved(count int) { m.overdue = append(m.overdue, count) }

// ---------------------------------------------------------------------------
// Fixture: a lending desk wired to stubs.
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

// day0 is the reference "today" used across lending tests.
var day0 = time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)

func daysAfter(n int) time.Time { return day0.AddDate(0, 0, n) }

type desk struct {
	catalog *domain.Catalog
	roster  *domain.Roster
	books   *stubBookRepo
	users   *stubUserRepo
	txlog   *stubTxLog
	metrics *stubMetrics
	lending *LendingService
	reports *ReportService
}

func newDesk(books []domain.Book, users []domain.User) *desk {
	d := &desk{
		catalog: domain.NewCatalog(books),
		roster:  domain.NewRoster(users),
		books:   &stubBookRepo{},
		users:   &stubUserRepo{},
		txlog:   &stubTxLog{},
		metrics: &stubMetrics{},
	}
	d.lending = NewLendingService(d.catalog, d.roster, d.books, d.users, d.txlog, d.metrics, discardLogger)
	d.reports = NewReportService(d.roster, d.metrics)
	return d
}

func availableBooks(ids ...string) []domain.Book {
	out := make([]domain.Book, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Book{ID: id, Title: "Title " + id, Author: "Author " + id, Available: true})
	}
	return out
}

func member(id, name string, t domain.UserType) domain.User {
	return domain.User{ID: id, Name: name, Type: t, Borrowed: []domain.Loan{}}
}
