package app

import (
	"context"
	"fmt"

	"github.com/librarykit/lending-system/internal/core/ports"
	"github.com/librarykit/lending-system/internal/infrastructure/db/filedb"
	"github.com/librarykit/lending-system/internal/infrastructure/db/mongo"
	"github.com/librarykit/lending-system/internal/pkg/config"
)

// stores is one persistence backend behind the core ports.
type stores struct {
	books ports.BookRepository
	users ports.UserRepository
	txlog ports.TransactionLog
	close func(ctx context.Context) error
}

func openStores(ctx context.Context, cfg *config.Config) (stores, error) {
	switch cfg.Store {
	case config.StoreMongo:
		return openMongoStores(ctx, cfg.Mongo)
	default:
		return openFileStores(cfg.Files)
	}
}

func openFileStores(files config.FilesConfig) (stores, error) {
	txlog, err := filedb.OpenCSVTransactionLog(files.TransactionsPath())
	if err != nil {
		return stores{}, err
	}
	return stores{
		books: filedb.NewBookStore(files.BooksPath()),
		users: filedb.NewUserStore(files.UsersPath()),
		txlog: txlog,
		close: func(context.Context) error { return nil },
	}, nil
}

func openMongoStores(ctx context.Context, cfg config.MongoConfig) (stores, error) {
	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.URI, Database: cfg.Database})
	if err != nil {
		return stores{}, err
	}

	books := mongo.NewBookRepository(db)
	users := mongo.NewUserRepository(db)
	txlog := mongo.NewTransactionRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"books":        books.EnsureIndexes,
		"users":        users.EnsureIndexes,
		"transactions": txlog.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			_ = mongo.Disconnect(ctx, client)
			return stores{}, fmt.Errorf("ensure %s indexes: %w", name, err)
		}
	}

	return stores{
		books: books,
		users: users,
		txlog: txlog,
		close: func(ctx context.Context) error { return mongo.Disconnect(ctx, client) },
	}, nil
}
