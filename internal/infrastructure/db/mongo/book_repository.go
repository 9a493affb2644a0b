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

const collectionBooks = "books"

// BookRepository implements ports.BookRepository using MongoDB.
type BookRepository struct {
	col *mongo.Collection
}

func NewBookRepository(db *mongo.Database) *BookRepository {
	return &BookRepository{col: db.Collection(collectionBooks)}
}

// bookDoc is the stored form of a book. Seq keeps catalog order.
type bookDoc struct {
	ID        string `bson:"_id"`
	Seq       int    `bson:"seq"`
	Title     string `bson:"title"`
	Author    string `bson:"author"`
	Available bool   `bson:"available"`
}

func toBookDoc(seq int, b domain.Book) bookDoc {
	return bookDoc{ID: b.ID, Seq: seq, Title: b.Title, Author: b.Author, Available: b.Available}
}

func (d bookDoc) toDomain() domain.Book {
	return domain.Book{ID: d.ID, Title: d.Title, Author: d.Author, Available: d.Available}
}

// LoadBooks returns all books ordered by seq.
func (r *BookRepository) LoadBooks(ctx context.Context) ([]domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find books: %w", err)
	}

	var docs []bookDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode books: %w", err)
	}

	books := make([]domain.Book, 0, len(docs))
	for _, d := range docs {
		books = append(books, d.toDomain())
	}
	return books, nil
}

// SaveBooks replaces the stored catalog.
func (r *BookRepository) SaveBooks(ctx context.Context, books []domain.Book) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return replaceAll(ctx, r.col, bookDocuments(books))
}

// bookDocuments numbers books by position so LoadBooks can restore order.
func bookDocuments(books []domain.Book) []any {
	docs := make([]any, 0, len(books))
	for i, b := range books {
		docs = append(docs, toBookDoc(i, b))
	}
	return docs
}

// EnsureIndexes creates necessary indexes on the books collection.
func (r *BookRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "seq", Value: 1}}})
	return err
}
