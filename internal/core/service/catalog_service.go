package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/librarykit/lending-system/internal/core/domain"
	"github.com/librarykit/lending-system/internal/core/ports"
)

// CatalogService owns the in-memory catalog and persists it after each change.
type CatalogService struct {
	catalog  *domain.Catalog
	repo     ports.BookRepository
	validate *inputValidator
	logger   zerolog.Logger
}

func NewCatalogService(catalog *domain.Catalog, repo ports.BookRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		catalog:  catalog,
		repo:     repo,
		validate: newInputValidator(),
		logger:   logger,
	}
}

// AddBook inserts an available book and rewrites the catalog store.
func (s *CatalogService) AddBook(ctx context.Context, in ports.AddBookInput) error {
	in.ID = strings.TrimSpace(in.ID)
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	if err := s.validate.Validate(in); err != nil {
		return fmt.Errorf("add book: %w", err)
	}

	book := domain.Book{ID: in.ID, Title: in.Title, Author: in.Author, Available: true}
	if err := s.catalog.Add(book); err != nil {
		s.logger.Debug().Str("book_id", in.ID).Msg("duplicate book rejected")
		return fmt.Errorf("add book %q: %w", in.ID, err)
	}

	if err := s.repo.SaveBooks(ctx, s.catalog.Books()); err != nil {
		s.logger.Error().Err(err).Msg("failed to save catalog")
		return fmt.Errorf("add book: save catalog: %w", err)
	}

	s.logger.Info().Str("book_id", book.ID).Str("title", book.Title).Msg("book added")
	return nil
}

// FindBook returns a copy of the book with the given id.
func (s *CatalogService) FindBook(id string) (domain.Book, error) {
	b, err := s.catalog.Find(id)
	if err != nil {
		return domain.Book{}, err
	}
	return *b, nil
}

// ListBooks returns every book with its display status, in catalog order.
func (s *CatalogService) ListBooks() []ports.BookView {
	books := s.catalog.Books()
	out := make([]ports.BookView, 0, len(books))
	for _, b := range books {
		out = append(out, ports.BookView{
			ID:     b.ID,
			Title:  b.Title,
			Author: b.Author,
			Status: b.Status(),
		})
	}
	return out
}
