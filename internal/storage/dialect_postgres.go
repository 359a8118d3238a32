package storage

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

// PostgresDialect implements Dialect for PostgreSQL
type PostgresDialect struct{}

// NewPostgresDialect creates a new PostgreSQL dialect
func NewPostgresDialect() *PostgresDialect {
	return &PostgresDialect{}
}

func (d *PostgresDialect) DriverName() string {
	return "postgres"
}

func (d *PostgresDialect) DSN(config DialectConfig) string {
	return config.URL
}

func (d *PostgresDialect) RewriteQuery(query string) string {
	// PostgreSQL uses $1, $2, etc. instead of ?
	return rewritePlaceholdersToNumbered(query)
}

func (d *PostgresDialect) CreateTableQuery() string {
	return `
		CREATE TABLE IF NOT EXISTS app_state (
			state_key TEXT PRIMARY KEY,
			state_value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`
}

func (d *PostgresDialect) UpsertQuery() string {
	return `
		INSERT INTO app_state (state_key, state_value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (state_key) DO UPDATE SET
			state_value = EXCLUDED.state_value,
			updated_at = EXCLUDED.updated_at
	`
}

func (d *PostgresDialect) ConfigureConnection(db *sql.DB) error {
	// Configure connection pool for PostgreSQL
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	return nil
}
