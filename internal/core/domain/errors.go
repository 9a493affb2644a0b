package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")
var ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
var ErrBookNotFound = fmt.Errorf("book %w", ErrNotFound)

var ErrDuplicateID = errors.New("id already exists")
var ErrDuplicateUser = fmt.Errorf("user %w", ErrDuplicateID)
var ErrDuplicateBook = fmt.Errorf("book %w", ErrDuplicateID)

var ErrInvalidUserType = errors.New("invalid user type")
var ErrLimitExceeded = errors.New("borrow limit reached")
var ErrUnavailable = errors.New("book not available")
var ErrNotBorrowed = errors.New("book was not borrowed by the user")
var ErrValidation = errors.New("validation failed")
var ErrInvalidLoan = errors.New("invalid loan")
