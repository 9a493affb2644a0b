package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/librarykit/lending-system/internal/core/domain"
)

const collectionTransactions = "transactions"

// TransactionRepository implements ports.TransactionLog using MongoDB. It only
// ever inserts.
type TransactionRepository struct {
	col *mongo.Collection
	now func() time.Time
}

func NewTransactionRepository(db *mongo.Database) *TransactionRepository {
	return &TransactionRepository{col: db.Collection(collectionTransactions), now: time.Now}
}

type transactionDoc struct {
	ID         string    `bson:"_id"`
	UserID     string    `bson:"user_id"`
	BookID     string    `bson:"book_id"`
	Action     string    `bson:"action"`
	Date       string    `bson:"date"`
	DueDate    string    `bson:"due_date"`
	Fine       float64   `bson:"fine"`
	RecordedAt time.Time `bson:"recorded_at"`
}

func toTransactionDoc(id string, recordedAt time.Time, rec domain.TransactionRecord) transactionDoc {
	return transactionDoc{
		ID:         id,
		UserID:     rec.UserID,
		BookID:     rec.BookID,
		Action:     string(rec.Action),
		Date:       rec.Date.String(),
		DueDate:    rec.DueDate.String(),
		Fine:       rec.Fine,
		RecordedAt: recordedAt.UTC(),
	}
}

// Append inserts record under a fresh id.
func (r *TransactionRepository) Append(ctx context.Context, record domain.TransactionRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toTransactionDoc(uuid.NewString(), r.now(), record)
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the transactions collection.
func (r *TransactionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "book_id", Value: 1}}},
		{Keys: bson.D{{Key: "recorded_at", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
