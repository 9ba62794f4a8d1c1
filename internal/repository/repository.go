package repository

import (
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

// psql builds queries with Postgres-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation. Assignment deduplication relies on this instead of a
// check-then-insert sequence, so concurrent creates cannot race.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
