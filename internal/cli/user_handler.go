package cli

import (
	"context"

	"github.com/librarykit/lending-system/internal/core/ports"
)

type userHandler struct {
	service ports.RosterService
}

func newUserHandler(service ports.RosterService) *userHandler {
	return &userHandler{service: service}
}

func (h *userHandler) Add(ctx context.Context, s *session) error {
	id, err := s.ask(ctx, "Enter User ID: ")
	if err != nil {
		return err
	}
	name, err := s.ask(ctx, "Enter User Name: ")
	if err != nil {
		return err
	}
	userType, err := s.ask(ctx, "Enter Type (student/faculty/regular): ")
	if err != nil {
		return err
	}

	if err := h.service.AddUser(ctx, ports.AddUserInput{ID: id, Name: name, Type: userType}); err != nil {
		return err
	}
	return s.say("✅ User added successfully!")
}

func (h *userHandler) List(_ context.Context, s *session) error {
	for _, u := range h.service.ListUsers() {
		if err := s.say("%s - %s (%s) | Borrowed: %d", u.ID, u.Name, u.Type, u.LoanCount); err != nil {
			return err
		}
	}
	return nil
}
