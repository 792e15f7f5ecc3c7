package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations.
const (
	NotNullViolation    = "23502"
	ForeignKeyViolation = "23503"
	UniqueViolation     = "23505"
	CheckViolation      = "23514"
)

// AsPgError extracts the server-side error, if err carries one.
func AsPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

func hasCode(err error, code string) bool {
	pgErr, ok := AsPgError(err)
	return ok && pgErr.Code == code
}

// IsUniqueViolation reports a primary key or unique constraint conflict.
func IsUniqueViolation(err error) bool {
	return hasCode(err, UniqueViolation)
}

// IsForeignKeyViolation reports a reference to a missing parent row.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, ForeignKeyViolation)
}

// IsConstraintViolation reports any integrity constraint failure (class 23).
func IsConstraintViolation(err error) bool {
	pgErr, ok := AsPgError(err)
	return ok && len(pgErr.Code) == 5 && pgErr.Code[:2] == "23"
}
