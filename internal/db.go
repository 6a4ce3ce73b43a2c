package internal

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/mattn/go-sqlite3"
)

// sqlite connection parameters applied to every DSN. WAL keeps readers
// unblocked while the cron prune writes; timestamps are stored as RFC3339
// UTC so SearchRecord scanning round-trips cleanly.
var sqliteParams = []string{
	"_busy_timeout=5000",
	"_journal_mode=WAL",
	"_loc=UTC",
	"_datetime_format=rfc3339",
	"_foreign_keys=on",
}

// Migrate brings the search-history schema up to date. A database that is
// already current is not an error.
func Migrate(migrationsPath, dbPath string) error {
	m, err := migrate.New("file://"+migrationsPath, "sqlite3://"+dbPath)
	if err != nil {
		return fmt.Errorf("failed to load migrations from %s: %w", migrationsPath, err)
	}

	if err := m.Up(); err != nil {
		if err == migrate.ErrNoChange {
			log.Print("database schema is up to date")
			return nil
		}
		return fmt.Errorf("migration failed: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	log.Printf("migrated database schema to version %d (dirty=%v)", version, dirty)
	return nil
}

// Connect opens the sqlite database at dbPath and verifies the connection.
func Connect(dbPath string) (*sql.DB, error) {
	separator := "?"
	if strings.Contains(dbPath, "?") {
		separator = "&"
	}
	dsn := dbPath + separator + strings.Join(sqliteParams, "&")

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Printf("connected to database: %s", dsn)
	return db, nil
}
