// Package database owns the embedded schema of the users table.
package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"

	"github.com/dtroode/userdir/internal/model"
)

//go:embed migrations
var migrations embed.FS

// goose keeps its dialect and filesystem in package state.
var mu sync.Mutex

// Migrate brings the schema for dialect up to date on db.
func Migrate(ctx context.Context, db *sql.DB, dialect model.Dialect) error {
	mu.Lock()
	defer mu.Unlock()

	gooseDialect, dir := "postgres", "migrations/postgres"
	if dialect == model.DialectSQLite {
		gooseDialect, dir = "sqlite3", "migrations/sqlite"
	}

	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
