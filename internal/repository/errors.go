package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint (username, (user, language), or (language, word)).
	ErrDuplicate = errors.New("duplicate key")

	// ErrNotFound is returned when a queried row does not exist.
	ErrNotFound = errors.New("not found")
)

// isUniqueViolation reports whether err is a PostgreSQL unique_violation
// (error class 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
