package repository

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation, per the PostgreSQL error code table.
const pgUniqueViolation = "23505"

// MapError translates driver errors into the domain sentinels each
// repository hands it: sql.ErrNoRows becomes notFoundErr and a unique
// constraint violation becomes duplicateErr. Anything else is returned
// unchanged so callers surface it as an internal failure.
func MapError(err error, notFoundErr, duplicateErr error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return notFoundErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return duplicateErr
	}

	return err
}
