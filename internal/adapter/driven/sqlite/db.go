// Package sqlite implements the OutcomeStore port on an embedded SQLite
// database holding the approval audit log.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the audit-log database connection. Writes are serialized through
// a single connection; WAL mode keeps concurrent reads from the API handler
// from blocking on the writer.
type DB struct {
	conn *sql.DB
	path string
}

// NewDB opens the audit-log database with WAL mode, busy timeout, and
// synchronous NORMAL. The approval log sees at most a handful of writes per
// event, so a single shared connection is enough.
func NewDB(dbPath string) (*DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)",
		dbPath,
	)

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping audit db: %w", err)
	}

	return &DB{conn: conn, path: dbPath}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if err := db.conn.Close(); err != nil {
		return fmt.Errorf("close audit db: %w", err)
	}
	return nil
}
