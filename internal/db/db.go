// Package db persists the build ledger: one row per published image, kept
// in a local sqlite database so past builds stay inspectable.
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed migration/*.sql
var migrationFiles embed.FS

// NewDB opens the ledger database at path, creating it if needed.
func NewDB(path string) (*sql.DB, error) {
	ledger, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger %q: %w", path, err)
	}
	if err := ledger.Ping(); err != nil {
		_ = ledger.Close()
		return nil, fmt.Errorf("failed to reach ledger %q: %w", path, err)
	}
	return ledger, nil
}

// InitSchema applies the ledger schema. Safe to run on every start.
func InitSchema(ctx context.Context, ledger *sql.DB) error {
	schema, err := migrationFiles.ReadFile("migration/001_initial.sql")
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	_, err = ledger.ExecContext(ctx, string(schema))
	if err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}
