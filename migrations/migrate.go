// Package migrations embeds the SQL schema of the backend database and of
// the field client's local store and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed server/*.sql client/*.sql
var embedMigrations embed.FS

// Target selects a migration set together with the goose dialect it is
// written for.
type Target struct {
	dir     string
	dialect string
}

var (
	// Server is the PostgreSQL schema of the inspection backend.
	Server = Target{dir: "server", dialect: "pgx"}

	// Client is the SQLite schema of the field client's local store.
	Client = Target{dir: "client", dialect: "sqlite3"}
)

var errNilDB = errors.New("migration error: db is nil")

// Migrate applies all pending migrations of target to db.
func Migrate(db *sql.DB, target Target) error {
	if db == nil {
		return errNilDB
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(target.dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, target.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
