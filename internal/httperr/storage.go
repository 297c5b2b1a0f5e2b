package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a postgres unique-index
// violation. The unique indexes on (barber_id, date) and
// (schedule_id, start_time, end_time) are the last line of defense
// behind the application-level checks.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return false
}

// UniqueConstraintName returns the violated constraint when err is a
// unique violation, so the repository can map it to a business code.
func UniqueConstraintName(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}
