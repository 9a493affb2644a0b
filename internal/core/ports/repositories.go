package ports

import (
	"context"

	"github.com/librarykit/lending-system/internal/core/domain"
)

// BookRepository persists the whole catalog at once.
type BookRepository interface {
	// LoadBooks returns the persisted catalog in stored order. A missing
	// store is created empty.
	LoadBooks(ctx context.Context) ([]domain.Book, error)
	SaveBooks(ctx context.Context, books []domain.Book) error
}

// UserRepository persists the whole roster, loans embedded, at once.
type UserRepository interface {
	LoadUsers(ctx context.Context) ([]domain.User, error)
	SaveUsers(ctx context.Context, users []domain.User) error
}

// TransactionLog is the append-only borrow/return journal.
type TransactionLog interface {
	Append(ctx context.Context, record domain.TransactionRecord) error
}
