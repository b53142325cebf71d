package database

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens the SQLite database at dataSourceName and runs pending migrations
func Open(dataSourceName string) (*sql.DB, error) {
	sep := "?"
	if strings.Contains(dataSourceName, "?") {
		sep = "&"
	}

	db, err := sql.Open("sqlite3", dataSourceName+sep+"_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite serializes writers; one connection avoids "database is locked"
	db.SetMaxOpenConns(1)

	// Test the connection
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
