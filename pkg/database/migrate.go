package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

type migration struct {
	Version string
	SQL     string
}

const createMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    version     VARCHAR(255) PRIMARY KEY,
    applied_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Migrate applies every embedded migration that has not been recorded in
// schema_migrations yet, one transaction per file.
func Migrate(ctx context.Context, db PgxIface, log *zap.Logger) error {
	log = log.With(zap.String("component", "migrate"))

	if _, err := db.Exec(ctx, createMigrationsTable); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	all, err := loadMigrations(migrationFS)
	if err != nil {
		return err
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}

	for _, m := range pendingMigrations(all, applied) {
		if err := apply(ctx, db, m); err != nil {
			return err
		}
		log.Info("migration applied", zap.String("version", m.Version))
	}

	return nil
}

func apply(ctx context.Context, db PgxIface, m migration) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", m.Version, err)
	}
	defer tx.Rollback(ctx)

	// no args: simple protocol, so a file may hold several statements
	if _, err := tx.Exec(ctx, m.SQL); err != nil {
		return fmt.Errorf("apply migration %s: %w", m.Version, err)
	}

	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, m.Version); err != nil {
		return fmt.Errorf("record migration %s: %w", m.Version, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit migration %s: %w", m.Version, err)
	}
	return nil
}

func appliedVersions(ctx context.Context, db PgxIface) (map[string]bool, error) {
	rows, err := db.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("query schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("scan schema_migrations: %w", err)
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

func loadMigrations(fsys fs.FS) ([]migration, error) {
	entries, err := fs.Glob(fsys, "migrations/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	migrations := make([]migration, 0, len(entries))
	for _, name := range entries {
		body, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		version := strings.TrimSuffix(name[strings.LastIndex(name, "/")+1:], ".sql")
		migrations = append(migrations, migration{Version: version, SQL: string(body)})
	}
	return migrations, nil
}

// pendingMigrations returns the migrations missing from applied, ordered by version.
func pendingMigrations(all []migration, applied map[string]bool) []migration {
	pending := make([]migration, 0, len(all))
	for _, m := range all {
		if !applied[m.Version] {
			pending = append(pending, m)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].Version < pending[j].Version })
	return pending
}
