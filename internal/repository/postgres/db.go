package postgres

import (
	"context"
	stderrors "errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"job-portal-backend/internal/domain"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type scanner interface {
	Scan(dest ...any) error
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// wrap maps driver errors onto the domain sentinels and adds op as context.
func wrap(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, pgx.ErrNoRows):
		return errors.Wrap(domain.ErrNotFound, op)
	case pgCode(err) == pgUniqueViolation:
		return errors.Wrap(domain.ErrConflict, op)
	case pgCode(err) == pgForeignKeyViolation:
		// The referenced user or job does not exist.
		return errors.Wrap(domain.ErrNotFound, op)
	default:
		return errors.Wrap(err, op)
	}
}

// withTx runs fn in a transaction, rolling back on error.
func withTx(ctx context.Context, db *pgxpool.Pool, fn func(pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(tx); err != nil {
		return err
	}
	return errors.Wrap(tx.Commit(ctx), "commit tx")
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
