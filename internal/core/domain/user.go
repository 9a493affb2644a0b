package domain

import (
	"fmt"
	"iter"
	"strings"
)

// UserType decides which BorrowPolicy applies to a user.
type UserType string

const (
	UserTypeStudent UserType = "student"
	UserTypeFaculty UserType = "faculty"
	UserTypeRegular UserType = "regular"
)

// ParseUserType accepts the three known types, case-insensitively.
func ParseUserType(s string) (UserType, error) {
	t := UserType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := borrowPolicies[t]; !ok {
		return "", ErrInvalidUserType
	}
	return t, nil
}

// User is a library member together with the loans they currently hold.
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     UserType `json:"type"`
	Borrowed []Loan   `json:"borrowed"`
}

// LoanFor returns the user's loan for bookID and its position in Borrowed.
func (u *User) LoanFor(bookID string) (Loan, int, bool) {
	for i, l := range u.Borrowed {
		if l.BookID == bookID {
			return l, i, true
		}
	}
	return Loan{}, -1, false
}

// AddLoan appends a loan at the end of Borrowed.
func (u *User) AddLoan(l Loan) {
	u.Borrowed = append(u.Borrowed, l)
}

// RemoveLoan drops the loan at index i, preserving the order of the rest.
func (u *User) RemoveLoan(i int) {
	u.Borrowed = append(u.Borrowed[:i:i], u.Borrowed[i+1:]...)
}

func (u User) clone() User {
	c := u
	c.Borrowed = make([]Loan, len(u.Borrowed))
	copy(c.Borrowed, u.Borrowed)
	return c
}

// Validate checks every loan the user holds.
func (u User) Validate() error {
	for _, l := range u.Borrowed {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("user %q: %w", u.ID, err)
		}
	}
	return nil
}

// Roster is the in-memory, ordered collection of users.
type Roster struct {
	users []User
}

// NewRoster builds a roster from previously persisted users, keeping order.
func NewRoster(users []User) *Roster {
	r := &Roster{users: make([]User, 0, len(users))}
	for _, u := range users {
		r.users = append(r.users, u.clone())
	}
	return r
}

// Add appends a user. Ids are unique within a roster.
func (r *Roster) Add(u User) error {
	if _, err := r.Find(u.ID); err == nil {
		return ErrDuplicateUser
	}
	if u.Borrowed == nil {
		u.Borrowed = []Loan{}
	}
	r.users = append(r.users, u.clone())
	return nil
}

// Find returns the stored user for in-place loan changes.
func (r *Roster) Find(id string) (*User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			return &r.users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

// Users returns a deep snapshot of the roster in insertion order.
func (r *Roster) Users() []User {
	out := make([]User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u.clone())
	}
	return out
}

// All yields copies of the users as they are at iteration time.
func (r *Roster) All() iter.Seq[User] {
	return func(yield func(User) bool) {
		for _, u := range r.users {
			if !yield(u.clone()) {
				return
			}
		}
	}
}

// Len returns the number of registered users.
func (r *Roster) Len() int { return len(r.users) }
