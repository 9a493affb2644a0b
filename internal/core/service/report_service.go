package service

import (
	"iter"
	"time"

	"github.com/librarykit/lending-system/internal/core/domain"
	"github.com/librarykit/lending-system/internal/core/ports"
)

// ReportService builds read-only views over the roster.
type ReportService struct {
	roster  *domain.Roster
	metrics ports.LendingMetrics
}

// NewReportService returns a ReportService. metrics may be nil.
func NewReportService(roster *domain.Roster, metrics ports.LendingMetrics) *ReportService {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &ReportService{roster: roster, metrics: metrics}
}

// BorrowedReport yields every outstanding loan, users in roster order and
// loans in the order they were taken.
func (s *ReportService) BorrowedReport() iter.Seq[ports.BorrowedEntry] {
	return func(yield func(ports.BorrowedEntry) bool) {
		for u := range s.roster.All() {
			for _, l := range u.Borrowed {
				if !yield(ports.BorrowedEntry{UserName: u.Name, BookID: l.BookID, DueDate: l.DueDate}) {
					return
				}
			}
		}
	}
}

// OverdueReport yields the loans whose due date is strictly before now's
// calendar date. A full pass also refreshes the overdue gauge.
func (s *ReportService) OverdueReport(now time.Time) iter.Seq[ports.OverdueEntry] {
	today := domain.DateOf(now)
	return func(yield func(ports.OverdueEntry) bool) {
		count := 0
		for u := range s.roster.All() {
			for _, l := range u.Borrowed {
				if !l.IsOverdue(today) {
					continue
				}
				count++
				entry := ports.OverdueEntry{
					UserName:    u.Name,
					BookID:      l.BookID,
					DueDate:     l.DueDate,
					OverdueDays: l.OverdueDays(today),
				}
				if !yield(entry) {
					return
				}
			}
		}
		s.metrics.OverdueObserved(count)
	}
}
