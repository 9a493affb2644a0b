package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sethvargo/go-envconfig"
)

const (
	StoreFile  = "file"
	StoreMongo = "mongo"
)

type Config struct {
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=warn"`
	LogPretty bool   `env:"LOG_PRETTY, default=true"`

	// Store selects the persistence backend: "file" or "mongo".
	Store string `env:"LIBRARY_STORE, default=file"`

	// MetricsFile, when set, receives a Prometheus textfile at session end.
	MetricsFile string `env:"LIBRARY_METRICS_FILE"`

	Files FilesConfig
	Mongo MongoConfig
}

type FilesConfig struct {
	DataDir      string `env:"LIBRARY_DATA_DIR,          default=."`
	Books        string `env:"LIBRARY_BOOKS_FILE,        default=books.json"`
	Users        string `env:"LIBRARY_USERS_FILE,        default=users.json"`
	Transactions string `env:"LIBRARY_TRANSACTIONS_FILE, default=transactions.csv"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=library"`
}

func (f FilesConfig) BooksPath() string        { return f.path(f.Books) }
func (f FilesConfig) UsersPath() string        { return f.path(f.Users) }
func (f FilesConfig) TransactionsPath() string { return f.path(f.Transactions) }

func (f FilesConfig) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(f.DataDir, name)
}

// Validate rejects settings that envconfig cannot check on its own.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreFile, StoreMongo:
	default:
		return fmt.Errorf("config: unknown LIBRARY_STORE %q (want %q or %q)", c.Store, StoreFile, StoreMongo)
	}
	if c.Store == StoreMongo && c.Mongo.URI == "" {
		return fmt.Errorf("config: MONGO_URI is required when LIBRARY_STORE=%s", StoreMongo)
	}
	return nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration through the given lookuper and validates it.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
