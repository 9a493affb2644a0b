// Package metrics defines the Prometheus metrics for lending activity. It is
// the single source of truth for metric names, labels and help strings.
//
// A session is short-lived, so nothing is scraped. The collector keeps its own
// registry and, when configured, dumps it in the node_exporter textfile format
// on exit.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "library"

// Collector implements ports.LendingMetrics.
type Collector struct {
	reg *prometheus.Registry

	// ── Loan metrics ──────────────────────────────────────────────────────────

	// loansBorrowed counts successful borrows.
	// Label:
	//   - user_type: "student", "faculty" or "regular"
	loansBorrowed *prometheus.CounterVec

	// loansReturned counts successful returns.
	// Label:
	//   - user_type: as above
	loansReturned *prometheus.CounterVec

	finesCollected prometheus.Counter

	// failures counts rejected borrow and return requests.
	// Labels:
	//   - operation: "borrow" or "return"
	//   - reason: e.g. "limit_exceeded", "unavailable", "not_borrowed"
	failures *prometheus.CounterVec

	// ── Report metrics ────────────────────────────────────────────────────────

	loansOverdue prometheus.Gauge
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		reg: reg,
		loansBorrowed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "loans_borrowed_total",
				Help:      "Total number of books lent, by user type.",
			},
			[]string{"user_type"},
		),
		loansReturned: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "loans_returned_total",
				Help:      "Total number of books returned, by user type.",
			},
			[]string{"user_type"},
		),
		finesCollected: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fines_collected_total",
				Help:      "Sum of late fines charged on return, in dollars.",
			},
		),
		failures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lending_failures_total",
				Help:      "Total number of rejected borrow and return requests.",
			},
			[]string{"operation", "reason"},
		),
		loansOverdue: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "loans_overdue",
				Help:      "Overdue loans seen by the most recent overdue report.",
			},
		),
	}
}

// Registry exposes the collector's registry for gathering.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

func (c *Collector) BorrowRecorded(userType string) {
	c.loansBorrowed.WithLabelValues(userType).Inc()
}

func (c *Collector) ReturnRecorded(userType string, fine float64) {
	c.loansReturned.WithLabelValues(userType).Inc()
	if fine > 0 {
		c.finesCollected.Add(fine)
	}
}

func (c *Collector) FailureRecorded(operation, reason string) {
	c.failures.WithLabelValues(operation, reason).Inc()
}

func (c *Collector) OverdueObserved(count int) {
	c.loansOverdue.Set(float64(count))
}

// WriteTextfile writes every metric to path in the text exposition format.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.reg)
}
