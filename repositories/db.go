package repositories

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// OpenSQLite opens the board database and creates the schema if needed.
// The DSN pragmas apply to every pooled connection: foreign_keys makes
// the ON DELETE CASCADE on messages live, busy_timeout keeps concurrent
// writers from failing immediately with SQLITE_BUSY.
func OpenSQLite(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := initializeSchema(db); err != nil {
		return nil, fmt.Errorf("initialize db: %w", err)
	}

	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

func initializeSchema(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			username   TEXT    UNIQUE NOT NULL,
			email      TEXT    UNIQUE NOT NULL,
			password   TEXT    NOT NULL,
			created_at INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS messages (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id   INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			content   TEXT    NOT NULL,
			-- parent_id references messages.id but is intentionally not
			-- declared as a foreign key: deleting a user cascades away
			-- their messages and may orphan replies, which stay in place.
			parent_id INTEGER,
			timestamp INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("create messages table: %w", err)
	}

	return nil
}
