package cli

import (
	"context"
	"strings"
	"time"

	"github.com/librarykit/lending-system/internal/core/ports"
)

type lendingHandler struct {
	service ports.LendingService
	now     func() time.Time
}

func newLendingHandler(service ports.LendingService, now func() time.Time) *lendingHandler {
	return &lendingHandler{service: service, now: now}
}

func (h *lendingHandler) askIDs(ctx context.Context, s *session) (userID, bookID string, err error) {
	if userID, err = s.ask(ctx, "Enter User ID: "); err != nil {
		return "", "", err
	}
	if bookID, err = s.ask(ctx, "Enter Book ID: "); err != nil {
		return "", "", err
	}
	return strings.TrimSpace(userID), strings.TrimSpace(bookID), nil
}

func (h *lendingHandler) Borrow(ctx context.Context, s *session) error {
	userID, bookID, err := h.askIDs(ctx, s)
	if err != nil {
		return err
	}

	due, err := h.service.Borrow(ctx, ports.BorrowInput{UserID: userID, BookID: bookID, Now: h.now()})
	if err != nil {
		return err
	}
	return s.say("✅ Book borrowed! Due date: %s", due)
}

func (h *lendingHandler) Return(ctx context.Context, s *session) error {
	userID, bookID, err := h.askIDs(ctx, s)
	if err != nil {
		return err
	}

	fine, err := h.service.Return(ctx, ports.ReturnInput{UserID: userID, BookID: bookID, Now: h.now()})
	if err != nil {
		return err
	}
	return s.say("✅ Book returned! Fine: $%.2f", fine)
}
