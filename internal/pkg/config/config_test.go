package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadWith_Defaults(t *testing.T) {
	// act
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))

	// assert
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
	assert.Equal(t, StoreFile, cfg.Store)
	assert.Empty(t, cfg.MetricsFile)
	assert.Equal(t, "books.json", cfg.Files.BooksPath())
	assert.Equal(t, "users.json", cfg.Files.UsersPath())
	assert.Equal(t, "transactions.csv", cfg.Files.TransactionsPath())
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "library", cfg.Mongo.Database)
}

func Test_LoadWith_Overrides(t *testing.T) {
	// arrange
	lookuper := envconfig.MapLookuper(map[string]string{
		"LOG_LEVEL":            "debug",
		"LOG_PRETTY":           "false",
		"LIBRARY_STORE":        "mongo",
		"LIBRARY_DATA_DIR":     "/var/lib/library",
		"LIBRARY_USERS_FILE":   "/etc/library/members.json",
		"LIBRARY_METRICS_FILE": "/tmp/library.prom",
		"MONGO_DB":             "branch_a",
	})

	// act
	cfg, err := LoadWith(context.Background(), lookuper)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, StoreMongo, cfg.Store)
	assert.Equal(t, filepath.Join("/var/lib/library", "books.json"), cfg.Files.BooksPath())
	assert.Equal(t, "/etc/library/members.json", cfg.Files.UsersPath())
	assert.Equal(t, "/tmp/library.prom", cfg.MetricsFile)
	assert.Equal(t, "branch_a", cfg.Mongo.Database)
}

func Test_LoadWith_Rejects_Unknown_Store(t *testing.T) {
	// act
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{"LIBRARY_STORE": "sqlite"}))

	// assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
}

func Test_LoadWith_Rejects_Malformed_Bool(t *testing.T) {
	// act
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{"LOG_PRETTY": "maybe"}))

	// assert
	assert.Error(t, err)
}
