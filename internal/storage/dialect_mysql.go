package storage

import (
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLDialect implements Dialect for MySQL
type MySQLDialect struct{}

// NewMySQLDialect creates a new MySQL dialect
func NewMySQLDialect() *MySQLDialect {
	return &MySQLDialect{}
}

func (d *MySQLDialect) DriverName() string {
	return "mysql"
}

func (d *MySQLDialect) DSN(config DialectConfig) string {
	return config.URL
}

func (d *MySQLDialect) RewriteQuery(query string) string {
	// MySQL uses ? placeholders like SQLite, no rewrite needed
	return query
}

func (d *MySQLDialect) CreateTableQuery() string {
	return `
		CREATE TABLE IF NOT EXISTS app_state (
			state_key VARCHAR(255) PRIMARY KEY,
			state_value LONGTEXT NOT NULL,
			updated_at DATETIME(6) NOT NULL
		)
	`
}

func (d *MySQLDialect) UpsertQuery() string {
	return `
		INSERT INTO app_state (state_key, state_value, updated_at)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE
			state_value = VALUES(state_value),
			updated_at = VALUES(updated_at)
	`
}

func (d *MySQLDialect) ConfigureConnection(db *sql.DB) error {
	// Configure connection pool for MySQL
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	return nil
}
