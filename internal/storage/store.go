// Package storage provides the opaque key-value blob store the
// persistence layer writes the application state to. Backends exist
// for SQL databases (sqlite, postgres, mysql), a plain file directory
// and an in-memory map.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"littlewords/internal/config"
)

// ErrKeyNotFound is returned by Get when no value exists for the key
var ErrKeyNotFound = errors.New("key not found")

// Store is an asynchronous, fallible key-value blob store
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Open creates a store based on the configured storage type
func Open(cfg *config.Config) (Store, error) {
	switch strings.ToLower(cfg.StorageType) {
	case "postgres", "postgresql":
		return OpenSQL(NewPostgresDialect(), DialectConfig{URL: cfg.DatabaseURL})
	case "mysql":
		return OpenSQL(NewMySQLDialect(), DialectConfig{URL: cfg.DatabaseURL})
	case "sqlite", "sqlite3":
		return OpenSQL(NewSQLiteDialect(), DialectConfig{Path: cfg.DatabasePath})
	case "file", "":
		return NewFileStore(cfg.DataDir)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.StorageType)
	}
}
