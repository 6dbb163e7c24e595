package relational

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type constraint int

const (
	noConstraint constraint = iota
	uniqueConstraint
	foreignKeyConstraint
	notNullConstraint
)

// PostgreSQL SQLSTATE codes of integrity violations.
//
//nolint:gochecknoglobals
var pgConstraintCodes = map[string]constraint{
	"23505": uniqueConstraint,
	"23503": foreignKeyConstraint,
	"23502": notNullConstraint,
}

// violatedConstraint reports which integrity constraint err violated. PostgreSQL errors are read by
// SQLSTATE; SQLite reports violations as "<KIND> constraint failed" messages.
func violatedConstraint(err error) constraint {
	if err == nil {
		return noConstraint
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgConstraintCodes[pgErr.Code]
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return uniqueConstraint
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return foreignKeyConstraint
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint"), strings.Contains(msg, "duplicate key"):
		return uniqueConstraint
	case strings.Contains(msg, "foreign key constraint"):
		return foreignKeyConstraint
	case strings.Contains(msg, "not null constraint"), strings.Contains(msg, "null value"):
		return notNullConstraint
	default:
		return noConstraint
	}
}
