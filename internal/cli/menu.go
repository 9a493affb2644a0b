// Package cli is the interactive, numbered menu in front of the lending core.
package cli

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/librarykit/lending-system/internal/core/ports"
)

const (
	menuTitle   = "\n===== 📚 Library Management System ====="
	choiceLabel = "Enter choice: "
	choiceExit  = "9"
)

// Services groups the core services the menu drives.
type Services struct {
	Catalog ports.CatalogService
	Roster  ports.RosterService
	Lending ports.LendingService
	Reports ports.ReportService
}

type action func(ctx context.Context, s *session) error

type command struct {
	key   string
	label string
	run   action
}

// Menu reads choices until the operator exits or input ends.
type Menu struct {
	commands  []command
	presenter *errorPresenter
	log       zerolog.Logger
}

// NewMenu registers every command. now is read once per borrow or return.
func NewMenu(svc Services, now func() time.Time, log zerolog.Logger) *Menu {
	books := newBookHandler(svc.Catalog)
	users := newUserHandler(svc.Roster)
	lending := newLendingHandler(svc.Lending, now)
	reports := newReportHandler(svc.Reports, now)

	return &Menu{
		commands: []command{
			{key: "1", label: "Add Book", run: books.Add},
			{key: "2", label: "View Books", run: books.List},
			{key: "3", label: "Add User", run: users.Add},
			{key: "4", label: "View Users", run: users.List},
			{key: "5", label: "Borrow Book", run: lending.Borrow},
			{key: "6", label: "Return Book", run: lending.Return},
			{key: "7", label: "Borrowed Report", run: reports.Borrowed},
			{key: "8", label: "Overdue Report", run: reports.Overdue},
			{key: choiceExit, label: "Exit"},
		},
		presenter: newErrorPresenter(log),
		log:       log,
	}
}

// Run serves one session over in and out. It returns nil when the operator
// chooses exit or input ends, ctx.Err() once ctx is cancelled, and the first
// error that is not a domain rule violation otherwise.
func (m *Menu) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s := newSession(in, out)
	defer s.close()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.printMenu(s); err != nil {
			return err
		}

		choice, err := s.ask(ctx, choiceLabel)
		if errors.Is(err, io.EOF) {
			m.log.Debug().Msg("input closed, ending session")
			return nil
		}
		if err != nil {
			return err
		}

		choice = strings.TrimSpace(choice)
		if choice == choiceExit {
			return nil
		}

		cmd, ok := m.lookup(choice)
		if !ok {
			if err := s.say("❌ Invalid choice!"); err != nil {
				return err
			}
			continue
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if err := cmd.run(ctx, s); err != nil {
			if ctx.Err() != nil {
				m.log.Debug().Str("command", cmd.label).Msg("session cancelled mid-command")
				return ctx.Err()
			}
			if errors.Is(err, io.EOF) {
				m.log.Debug().Str("command", cmd.label).Msg("input closed mid-command, ending session")
				return nil
			}
			msg, fatal := m.presenter.present(cmd.label, err)
			if fatal != nil {
				return fatal
			}
			if err := s.say("❌ %s", msg); err != nil {
				return err
			}
		}
	}
}

func (m *Menu) printMenu(s *session) error {
	if err := s.say(menuTitle); err != nil {
		return err
	}
	for _, c := range m.commands {
		if err := s.say("%s. %s", c.key, c.label); err != nil {
			return err
		}
	}
	return nil
}

func (m *Menu) lookup(choice string) (command, bool) {
	for _, c := range m.commands {
		if c.key == choice && c.run != nil {
			return c, true
		}
	}
	return command{}, false
}
