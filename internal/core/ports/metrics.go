package ports

// LendingMetrics receives lending outcomes. Implemented by internal/metrics.
type LendingMetrics interface {
	BorrowRecorded(userType string)
	ReturnRecorded(userType string, fine float64)
	FailureRecorded(operation, reason string)
	OverdueObserved(count int)
}
