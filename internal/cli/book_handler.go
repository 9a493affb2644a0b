package cli

import (
	"context"

	"github.com/librarykit/lending-system/internal/core/ports"
)

type bookHandler struct {
	service ports.CatalogService
}

func newBookHandler(service ports.CatalogService) *bookHandler {
	return &bookHandler{service: service}
}

func (h *bookHandler) Add(ctx context.Context, s *session) error {
	id, err := s.ask(ctx, "Enter Book ID (ISBN): ")
	if err != nil {
		return err
	}
	title, err := s.ask(ctx, "Enter Book Title: ")
	if err != nil {
		return err
	}
	author, err := s.ask(ctx, "Enter Author Name: ")
	if err != nil {
		return err
	}

	if err := h.service.AddBook(ctx, ports.AddBookInput{ID: id, Title: title, Author: author}); err != nil {
		return err
	}
	return s.say("✅ Book added successfully!")
}

func (h *bookHandler) List(_ context.Context, s *session) error {
	for _, b := range h.service.ListBooks() {
		if err := s.say("%s - %s by %s [%s]", b.ID, b.Title, b.Author, b.Status); err != nil {
			return err
		}
	}
	return nil
}
