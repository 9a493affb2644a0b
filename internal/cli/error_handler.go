package cli

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/librarykit/lending-system/internal/core/domain"
)

// errorPresenter turns command errors into operator messages. Domain rule
// violations become a message and the session goes on; anything else is
// logged and handed back as fatal.
type errorPresenter struct {
	log zerolog.Logger
}

func newErrorPresenter(log zerolog.Logger) *errorPresenter {
	return &errorPresenter{log: log}
}

func (p *errorPresenter) present(command string, err error) (string, error) {
	if msg, ok := domainMessage(err); ok {
		return msg, nil
	}

	// Unexpected error: log the real cause and stop the session.
	p.log.Error().
		Err(err).
		Str("command", command).
		Msg("unhandled error")

	return "", err
}

func domainMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return "Invalid User ID!", true
	case errors.Is(err, domain.ErrBookNotFound):
		return "Invalid Book ID!", true
	case errors.Is(err, domain.ErrLimitExceeded):
		return "Borrow limit reached!", true
	case errors.Is(err, domain.ErrUnavailable):
		return "Book not available!", true
	case errors.Is(err, domain.ErrNotBorrowed):
		return "This book was not borrowed by the user!", true
	case errors.Is(err, domain.ErrInvalidUserType):
		return "Invalid user type! Choose student, faculty or regular.", true
	case errors.Is(err, domain.ErrDuplicateBook):
		return "A book with this ID already exists!", true
	case errors.Is(err, domain.ErrDuplicateUser):
		return "A user with this ID already exists!", true
	case errors.Is(err, domain.ErrValidation):
		return "Invalid input: " + validationDetail(err), true
	}
	return "", false
}

// validationDetail keeps only the field messages that follow the sentinel.
func validationDetail(err error) string {
	marker := domain.ErrValidation.Error() + ": "
	msg := err.Error()
	if i := strings.Index(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
