package relational

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestViolatedConstraint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want constraint
	}{
		{name: "nil", err: nil, want: noConstraint},
		{name: "postgres unique", err: errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert"), want: uniqueConstraint},
		{name: "postgres foreign key", err: &pgconn.PgError{Code: "23503"}, want: foreignKeyConstraint},
		{name: "postgres not null", err: &pgconn.PgError{Code: "23502"}, want: notNullConstraint},
		{name: "postgres other", err: &pgconn.PgError{Code: "40001"}, want: noConstraint},
		{name: "translated duplicate", err: gorm.ErrDuplicatedKey, want: uniqueConstraint},
		{name: "translated foreign key", err: gorm.ErrForeignKeyViolated, want: foreignKeyConstraint},
		{name: "sqlite not null", err: errors.New("NOT NULL constraint failed: users.email"), want: notNullConstraint},
		{name: "sqlite unique", err: errors.New("UNIQUE constraint failed: products.name"), want: uniqueConstraint},
		{name: "unrelated", err: errors.New("database is locked"), want: noConstraint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, violatedConstraint(tt.err))
		})
	}
}
