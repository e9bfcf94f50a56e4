// Package migrations embeds the goose schema migrations for the SQL stores.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Dialects with embedded migrations
const (
	DialectPostgres = goose.DialectPostgres
	DialectSQLite   = goose.DialectSQLite3
)

var dirs = map[goose.Dialect]string{
	DialectPostgres: "postgres",
	DialectSQLite:   "sqlite",
}

// NewProvider returns a goose provider over the embedded migrations for dialect
func NewProvider(db *sql.DB, dialect goose.Dialect) (*goose.Provider, error) {
	dir, ok := dirs[dialect]
	if !ok {
		return nil, fmt.Errorf("no migrations for dialect %q", dialect)
	}
	sub, err := fs.Sub(files, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s migrations: %w", dir, err)
	}
	return goose.NewProvider(dialect, db, sub)
}

// Up applies every pending migration and returns the versions applied
func Up(ctx context.Context, db *sql.DB, dialect goose.Dialect) ([]int64, error) {
	p, err := NewProvider(db, dialect)
	if err != nil {
		return nil, err
	}
	results, err := p.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	applied := make([]int64, 0, len(results))
	for _, r := range results {
		applied = append(applied, r.Source.Version)
	}
	return applied, nil
}

// Status reports every known migration and whether it is applied
func Status(ctx context.Context, db *sql.DB, dialect goose.Dialect) ([]*goose.MigrationStatus, error) {
	p, err := NewProvider(db, dialect)
	if err != nil {
		return nil, err
	}
	return p.Status(ctx)
}
