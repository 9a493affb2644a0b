package domain

import "fmt"

// FinePerDay is charged for every full day a loan is returned late.
const FinePerDay = 0.5

// Loan exists only inside a User's Borrowed list.
type Loan struct {
	BookID  string `json:"book_id"`
	DueDate Date   `json:"due_date"`
}

// Validate reports a loan that names no book or carries no due date. Such a
// loan can only come from a hand-edited store file.
func (l Loan) Validate() error {
	switch {
	case l.BookID == "":
		return fmt.Errorf("%w: missing book id", ErrInvalidLoan)
	case l.DueDate.IsZero():
		return fmt.Errorf("%w: book %q has no due date", ErrInvalidLoan, l.BookID)
	}
	return nil
}

// OverdueDays is how many days past the due date today is; zero when the loan
// is not overdue.
func (l Loan) OverdueDays(today Date) int {
	if !today.After(l.DueDate) {
		return 0
	}
	return today.DaysSince(l.DueDate)
}

// IsOverdue reports whether the due date is strictly before today.
func (l Loan) IsOverdue(today Date) bool {
	return today.After(l.DueDate)
}

// FineOn is the fine owed if the loan is returned on today.
func (l Loan) FineOn(today Date) float64 {
	return float64(l.OverdueDays(today)) * FinePerDay
}

// BorrowPolicy is the lending rule pair for one UserType.
type BorrowPolicy struct {
	MaxLoans       int
	LoanPeriodDays int
}

var borrowPolicies = map[UserType]BorrowPolicy{
	UserTypeStudent: {MaxLoans: 5, LoanPeriodDays: 21},
	UserTypeFaculty: {MaxLoans: 10, LoanPeriodDays: 90},
	UserTypeRegular: {MaxLoans: 3, LoanPeriodDays: 14},
}

// PolicyFor returns the policy for t. The boolean is false for unknown types,
// which can only come from hand-edited store files.
func PolicyFor(t UserType) (BorrowPolicy, bool) {
	p, ok := borrowPolicies[t]
	return p, ok
}
