package filedb

import (
	"context"

	"github.com/librarykit/lending-system/internal/core/domain"
)

// BookStore is the file-backed ports.BookRepository.
type BookStore struct {
	file *JSONStore[domain.Book]
}

func NewBookStore(path string) *BookStore {
	return &BookStore{file: NewJSONStore[domain.Book](path)}
}

func (s *BookStore) LoadBooks(ctx context.Context) ([]domain.Book, error) {
	return s.file.Load(ctx)
}

func (s *BookStore) SaveBooks(ctx context.Context, books []domain.Book) error {
	return s.file.Save(ctx, books)
}
