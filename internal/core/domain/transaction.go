package domain

// TransactionAction identifies the kind of lending event.
type TransactionAction string

const (
	ActionBorrow TransactionAction = "Borrow"
	ActionReturn TransactionAction = "Return"
)

// TransactionRecord is one append-only entry in the transaction log.
type TransactionRecord struct {
	UserID  string
	BookID  string
	Action  TransactionAction
	Date    Date
	DueDate Date
	Fine    float64
}
