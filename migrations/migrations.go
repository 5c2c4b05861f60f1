// Package migrations embeds the SQL schema and applies it in file order.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.sql
var files embed.FS

const tableDDL = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Versions returns the embedded migration versions in apply order.
func Versions() ([]string, error) {
	names, err := fs.Glob(files, "*.up.sql")
	if err != nil {
		return nil, err
	}
	versions := make([]string, 0, len(names))
	for _, n := range names {
		versions = append(versions, strings.TrimSuffix(n, ".up.sql"))
	}
	sort.Strings(versions)
	return versions, nil
}

// Up applies every migration not yet recorded in schema_migrations and
// returns the versions it applied.
func Up(ctx context.Context, db *sql.DB) ([]string, error) {
	if _, err := db.ExecContext(ctx, tableDDL); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}
	versions, err := Versions()
	if err != nil {
		return nil, err
	}

	var applied []string
	for _, v := range versions {
		var exists bool
		if err := db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, v,
		).Scan(&exists); err != nil {
			return applied, err
		}
		if exists {
			continue
		}
		if err := run(ctx, db, v+".up.sql", func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, v)
			return err
		}); err != nil {
			return applied, fmt.Errorf("migration %s: %w", v, err)
		}
		applied = append(applied, v)
	}
	return applied, nil
}

// Down reverts the most recently applied migration, if any.
func Down(ctx context.Context, db *sql.DB) (string, error) {
	if _, err := db.ExecContext(ctx, tableDDL); err != nil {
		return "", fmt.Errorf("create schema_migrations: %w", err)
	}
	var v string
	err := db.QueryRowContext(ctx,
		`SELECT version FROM schema_migrations ORDER BY version DESC LIMIT 1`,
	).Scan(&v)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if err := run(ctx, db, v+".down.sql", func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM schema_migrations WHERE version = $1`, v)
		return err
	}); err != nil {
		return "", fmt.Errorf("revert %s: %w", v, err)
	}
	return v, nil
}

func run(ctx context.Context, db *sql.DB, name string, record func(*sql.Tx) error) error {
	body, err := files.ReadFile(name)
	if err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, string(body)); err != nil {
		return err
	}
	if err := record(tx); err != nil {
		return err
	}
	return tx.Commit()
}
