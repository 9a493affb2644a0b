package filedb

import (
	"context"
	"fmt"

	"github.com/librarykit/lending-system/internal/core/domain"
)

// UserStore is the file-backed ports.UserRepository. Loans are embedded in
// each user object. Loading fails on a loan without a book id or due date.
type UserStore struct {
	file *JSONStore[domain.User]
}

func NewUserStore(path string) *UserStore {
	return &UserStore{file: NewJSONStore[domain.User](path)}
}

func (s *UserStore) LoadUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.file.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Borrowed == nil {
			users[i].Borrowed = []domain.Loan{}
		}
		if err := users[i].Validate(); err != nil {
			return nil, fmt.Errorf("load %s: %w", s.file.Path(), err)
		}
	}
	return users, nil
}

func (s *UserStore) SaveUsers(ctx context.Context, users []domain.User) error {
	return s.file.Save(ctx, users)
}
