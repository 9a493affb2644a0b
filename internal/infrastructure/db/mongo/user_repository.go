package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/librarykit/lending-system/internal/core/domain"
)

const collectionUsers = "users"

// UserRepository implements ports.UserRepository using MongoDB. Loans are
// embedded in the user document.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

type userDoc struct {
	ID       string    `bson:"_id"`
	Seq      int       `bson:"seq"`
	Name     string    `bson:"name"`
	Type     string    `bson:"type"`
	Borrowed []loanDoc `bson:"borrowed"`
}

// loanDoc keeps the due date as YYYY-MM-DD, matching the file store.
type loanDoc struct {
	BookID  string `bson:"book_id"`
	DueDate string `bson:"due_date"`
}

func toUserDoc(seq int, u domain.User) userDoc {
	loans := make([]loanDoc, 0, len(u.Borrowed))
	for _, l := range u.Borrowed {
		loans = append(loans, loanDoc{BookID: l.BookID, DueDate: l.DueDate.String()})
	}
	return userDoc{ID: u.ID, Seq: seq, Name: u.Name, Type: string(u.Type), Borrowed: loans}
}

func (d userDoc) toDomain() (domain.User, error) {
	loans := make([]domain.Loan, 0, len(d.Borrowed))
	for _, l := range d.Borrowed {
		due, err := domain.ParseDate(l.DueDate)
		if err != nil {
			return domain.User{}, fmt.Errorf("user %q: %w", d.ID, err)
		}
		loans = append(loans, domain.Loan{BookID: l.BookID, DueDate: due})
	}
	u := domain.User{ID: d.ID, Name: d.Name, Type: domain.UserType(d.Type), Borrowed: loans}
	if err := u.Validate(); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// LoadUsers returns all users ordered by seq.
func (r *UserRepository) LoadUsers(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]domain.User, 0, len(docs))
	for _, d := range docs {
		u, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// SaveUsers replaces the stored roster.
func (r *UserRepository) SaveUsers(ctx context.Context, users []domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return replaceAll(ctx, r.col, userDocuments(users))
}

func userDocuments(users []domain.User) []any {
	docs := make([]any, 0, len(users))
	for i, u := range users {
		docs = append(docs, toUserDoc(i, u))
	}
	return docs
}

// EnsureIndexes creates necessary indexes on the users collection.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "seq", Value: 1}}},
		{Keys: bson.D{{Key: "borrowed.book_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
