package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/librarykit/lending-system/internal/core/domain"
	"github.com/librarykit/lending-system/internal/core/ports"
)

const (
	opBorrow = "borrow"
	opReturn = "return"
)

// LendingService applies the borrow/return rules to the shared catalog and
// roster, persists both stores and journals each transition.
type LendingService struct {
	catalog  *domain.Catalog
	roster   *domain.Roster
	books    ports.BookRepository
	users    ports.UserRepository
	txlog    ports.TransactionLog
	metrics  ports.LendingMetrics
	validate *inputValidator
	log      zerolog.Logger
}

// NewLendingService returns a LendingService. metrics may be nil.
func NewLendingService(
	catalog *domain.Catalog,
	roster *domain.Roster,
	books ports.BookRepository,
	users ports.UserRepository,
	txlog ports.TransactionLog,
	metrics ports.LendingMetrics,
	log zerolog.Logger,
) *LendingService {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &LendingService{
		catalog:  catalog,
		roster:   roster,
		books:    books,
		users:    users,
		txlog:    txlog,
		metrics:  metrics,
		validate: newInputValidator(),
		log:      log,
	}
}

// Borrow lends a book to a user and returns the due date.
//
// Checks run in this order, and nothing changes when one fails:
//  1. user and book exist (user first)
//  2. the user is below their type's loan limit
//  3. the book is available
func (s *LendingService) Borrow(ctx context.Context, in ports.BorrowInput) (domain.Date, error) {
	if err := s.validate.Validate(in); err != nil {
		return domain.Date{}, s.fail(opBorrow, fmt.Errorf("borrow: %w", err))
	}

	user, book, err := s.resolve(in.UserID, in.BookID)
	if err != nil {
		return domain.Date{}, s.fail(opBorrow, fmt.Errorf("borrow: %w", err))
	}

	policy, ok := domain.PolicyFor(user.Type)
	if !ok {
		return domain.Date{}, s.fail(opBorrow, fmt.Errorf("borrow: user %q: %w: %q", user.ID, domain.ErrInvalidUserType, user.Type))
	}

	if len(user.Borrowed) >= policy.MaxLoans {
		return domain.Date{}, s.fail(opBorrow, fmt.Errorf("borrow: user %q holds %d of %d: %w",
			user.ID, len(user.Borrowed), policy.MaxLoans, domain.ErrLimitExceeded))
	}

	if !book.Available {
		return domain.Date{}, s.fail(opBorrow, fmt.Errorf("borrow: book %q: %w", book.ID, domain.ErrUnavailable))
	}

	today := domain.DateOf(in.Now)
	due := today.AddDays(policy.LoanPeriodDays)

	user.AddLoan(domain.Loan{BookID: book.ID, DueDate: due})
	book.Available = false

	if err := s.persist(ctx); err != nil {
		return domain.Date{}, fmt.Errorf("borrow: %w", err)
	}

	record := domain.TransactionRecord{
		UserID:  user.ID,
		BookID:  book.ID,
		Action:  domain.ActionBorrow,
		Date:    today,
		DueDate: due,
		Fine:    0,
	}
	if err := s.txlog.Append(ctx, record); err != nil {
		return domain.Date{}, fmt.Errorf("borrow: append transaction: %w", err)
	}

	s.metrics.BorrowRecorded(string(user.Type))
	s.log.Info().
		Str("user_id", user.ID).
		Str("book_id", book.ID).
		Str("due_date", due.String()).
		Msg("book borrowed")

	return due, nil
}

// Return takes a book back from a user and returns the fine owed, which is
// FinePerDay for each day past the due date.
func (s *LendingService) Return(ctx context.Context, in ports.ReturnInput) (float64, error) {
	if err := s.validate.Validate(in); err != nil {
		return 0, s.fail(opReturn, fmt.Errorf("return: %w", err))
	}

	user, book, err := s.resolve(in.UserID, in.BookID)
	if err != nil {
		return 0, s.fail(opReturn, fmt.Errorf("return: %w", err))
	}

	loan, idx, ok := user.LoanFor(book.ID)
	if !ok {
		return 0, s.fail(opReturn, fmt.Errorf("return: user %q, book %q: %w", user.ID, book.ID, domain.ErrNotBorrowed))
	}

	today := domain.DateOf(in.Now)
	fine := loan.FineOn(today)

	user.RemoveLoan(idx)
	book.Available = true

	if err := s.persist(ctx); err != nil {
		return 0, fmt.Errorf("return: %w", err)
	}

	record := domain.TransactionRecord{
		UserID:  user.ID,
		BookID:  book.ID,
		Action:  domain.ActionReturn,
		Date:    today,
		DueDate: loan.DueDate,
		Fine:    fine,
	}
	if err := s.txlog.Append(ctx, record); err != nil {
		return 0, fmt.Errorf("return: append transaction: %w", err)
	}

	s.metrics.ReturnRecorded(string(user.Type), fine)
	s.log.Info().
		Str("user_id", user.ID).
		Str("book_id", book.ID).
		Float64("fine", fine).
		Msg("book returned")

	return fine, nil
}

// resolve looks up both sides of a transition. The user is checked first.
func (s *LendingService) resolve(userID, bookID string) (*domain.User, *domain.Book, error) {
	user, err := s.roster.Find(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("%q: %w", userID, err)
	}
	book, err := s.catalog.Find(bookID)
	if err != nil {
		return nil, nil, fmt.Errorf("%q: %w", bookID, err)
	}
	return user, book, nil
}

// persist rewrites the roster then the catalog.
func (s *LendingService) persist(ctx context.Context) error {
	if err := s.users.SaveUsers(ctx, s.roster.Users()); err != nil {
		s.log.Error().Err(err).Msg("failed to save roster")
		return fmt.Errorf("save users: %w", err)
	}
	if err := s.books.SaveBooks(ctx, s.catalog.Books()); err != nil {
		s.log.Error().Err(err).Msg("failed to save catalog")
		return fmt.Errorf("save books: %w", err)
	}
	return nil
}

// fail records a rule violation and hands the error back.
func (s *LendingService) fail(op string, err error) error {
	reason := failureReason(err)
	s.metrics.FailureRecorded(op, reason)
	s.log.Debug().Err(err).Str("operation", op).Str("reason", reason).Msg("lending rule rejected request")
	return err
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, domain.ErrBookNotFound):
		return "book_not_found"
	case errors.Is(err, domain.ErrLimitExceeded):
		return "limit_exceeded"
	case errors.Is(err, domain.ErrUnavailable):
		return "unavailable"
	case errors.Is(err, domain.ErrNotBorrowed):
		return "not_borrowed"
	case errors.Is(err, domain.ErrInvalidUserType):
		return "invalid_user_type"
	case errors.Is(err, domain.ErrValidation):
		return "invalid_input"
	default:
		return "other"
	}
}

type nopMetrics struct{}

func (nopMetrics) BorrowRecorded(string)          {}
func (nopMetrics) ReturnRecorded(string, float64) {}
func (nopMetrics) FailureRecorded(string, string) {}
func (nopMetrics) OverdueObserved(int)            {}
