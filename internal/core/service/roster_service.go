package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/librarykit/lending-system/internal/core/domain"
	"github.com/librarykit/lending-system/internal/core/ports"
)

// RosterService owns the in-memory roster and persists it after each change.
type RosterService struct {
	roster   *domain.Roster
	repo     ports.UserRepository
	validate *inputValidator
	logger   zerolog.Logger
}

func NewRosterService(roster *domain.Roster, repo ports.UserRepository, logger zerolog.Logger) *RosterService {
	return &RosterService{
		roster:   roster,
		repo:     repo,
		validate: newInputValidator(),
		logger:   logger,
	}
}

// AddUser registers a user with no loans and rewrites the roster store.
func (s *RosterService) AddUser(ctx context.Context, in ports.AddUserInput) error {
	in.ID = strings.TrimSpace(in.ID)
	in.Name = strings.TrimSpace(in.Name)
	if err := s.validate.Validate(in); err != nil {
		return fmt.Errorf("add user: %w", err)
	}

	userType, err := domain.ParseUserType(in.Type)
	if err != nil {
		return fmt.Errorf("add user: %w: %q", err, in.Type)
	}

	user := domain.User{ID: in.ID, Name: in.Name, Type: userType, Borrowed: []domain.Loan{}}
	if err := s.roster.Add(user); err != nil {
		s.logger.Debug().Str("user_id", in.ID).Msg("duplicate user rejected")
		return fmt.Errorf("add user %q: %w", in.ID, err)
	}

	if err := s.repo.SaveUsers(ctx, s.roster.Users()); err != nil {
		s.logger.Error().Err(err).Msg("failed to save roster")
		return fmt.Errorf("add user: save roster: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Str("type", string(user.Type)).Msg("user added")
	return nil
}

// FindUser returns a copy of the user with the given id.
func (s *RosterService) FindUser(id string) (domain.User, error) {
	u, err := s.roster.Find(id)
	if err != nil {
		return domain.User{}, err
	}
	found := *u
	found.Borrowed = append([]domain.Loan(nil), u.Borrowed...)
	return found, nil
}

// ListUsers returns every user with their current loan count.
func (s *RosterService) ListUsers() []ports.UserView {
	users := s.roster.Users()
	out := make([]ports.UserView, 0, len(users))
	for _, u := range users {
		out = append(out, ports.UserView{
			ID:        u.ID,
			Name:      u.Name,
			Type:      string(u.Type),
			LoanCount: len(u.Borrowed),
		})
	}
	return out
}
