package cli

import (
	"context"
	"time"

	"github.com/librarykit/lending-system/internal/core/ports"
)

type reportHandler struct {
	service ports.ReportService
	now     func() time.Time
}

func newReportHandler(service ports.ReportService, now func() time.Time) *reportHandler {
	return &reportHandler{service: service, now: now}
}

func (h *reportHandler) Borrowed(_ context.Context, s *session) error {
	if err := s.say("📌 Currently Borrowed Books:"); err != nil {
		return err
	}
	for e := range h.service.BorrowedReport() {
		if err := s.say("User: %s | Book: %s | Due: %s", e.UserName, e.BookID, e.DueDate); err != nil {
			return err
		}
	}
	return nil
}

func (h *reportHandler) Overdue(_ context.Context, s *session) error {
	if err := s.say("⚠️ Overdue Books:"); err != nil {
		return err
	}
	for e := range h.service.OverdueReport(h.now()) {
		if err := s.say("User: %s | Book: %s | Overdue: %d days", e.UserName, e.BookID, e.OverdueDays); err != nil {
			return err
		}
	}
	return nil
}
