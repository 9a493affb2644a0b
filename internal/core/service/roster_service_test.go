package service

import (
	"context"
	"errors"
	"testing"

	"github.com/librarykit/lending-system/internal/core/domain"
	"github.com/librarykit/lending-system/internal/core/ports"
)

func TestRosterService_AddUser_Success(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewRosterService(domain.NewRoster(nil), repo, discardLogger)

	err := svc.AddUser(context.Background(), ports.AddUserInput{ID: "U1", Name: "Ada", Type: "Faculty"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	saved := repo.last()
	if len(saved) != 1 {
		t.Fatalf("expected 1 persisted user, got %d", len(saved))
	}
	if saved[0].Type != domain.UserTypeFaculty {
		t.Errorf("expected type to be normalised to faculty, got %q", saved[0].Type)
	}
	if saved[0].Borrowed == nil || len(saved[0].Borrowed) != 0 {
		t.Errorf("expected empty, non-nil loan list, got %#v", saved[0].Borrowed)
	}
}

func TestRosterService_AddUser_InvalidType(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewRosterService(domain.NewRoster(nil), repo, discardLogger)

	for _, typ := range []string{"", "librarian", "students"} {
		err := svc.AddUser(context.Background(), ports.AddUserInput{ID: "U1", Name: "Ada", Type: typ})
		if !errors.Is(err, domain.ErrInvalidUserType) {
			t.Errorf("type %q: expected ErrInvalidUserType, got %v", typ, err)
		}
	}
	if len(repo.saved) != 0 {
		t.Error("rejected users must not be persisted")
	}
}

func TestRosterService_AddUser_Duplicate(t *testing.T) {
	svc := NewRosterService(domain.NewRoster([]domain.User{member("U1", "Ada", domain.UserTypeStudent)}), &stubUserRepo{}, discardLogger)

	err := svc.AddUser(context.Background(), ports.AddUserInput{ID: "U1", Name: "Bob", Type: "regular"})

	if !errors.Is(err, domain.ErrDuplicateUser) {
		t.Errorf("expected ErrDuplicateUser, got %v", err)
	}
}

func TestRosterService_AddUser_MissingName(t *testing.T) {
	svc := NewRosterService(domain.NewRoster(nil), &stubUserRepo{}, discardLogger)

	err := svc.AddUser(context.Background(), ports.AddUserInput{ID: "U1", Name: " ", Type: "regular"})

	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestRosterService_ListUsers_LoanCount(t *testing.T) {
	withLoans := member("U2", "Bea", domain.UserTypeRegular)
	withLoans.Borrowed = []domain.Loan{{BookID: "B1"}, {BookID: "B2"}}
	svc := NewRosterService(domain.NewRoster([]domain.User{member("U1", "Ada", domain.UserTypeStudent), withLoans}), &stubUserRepo{}, discardLogger)

	got := svc.ListUsers()

	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].LoanCount != 0 || got[1].LoanCount != 2 {
		t.Errorf("unexpected loan counts: %+v", got)
	}
	if got[1].Type != "regular" {
		t.Errorf("expected type regular, got %q", got[1].Type)
	}
}

func TestRosterService_FindUser_ReturnsCopy(t *testing.T) {
	u := member("U1", "Ada", domain.UserTypeStudent)
	u.Borrowed = []domain.Loan{{BookID: "B1"}}
	svc := NewRosterService(domain.NewRoster([]domain.User{u}), &stubUserRepo{}, discardLogger)

	found, err := svc.FindUser("U1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found.Borrowed[0].BookID = "changed"

	again, _ := svc.FindUser("U1")
	if again.Borrowed[0].BookID != "B1" {
		t.Error("mutating the returned user must not change the roster")
	}

	if _, err := svc.FindUser("nobody"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
