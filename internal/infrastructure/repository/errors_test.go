package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ipede/user-directory-service/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapConstraintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "duplicate email",
			err:  &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_key"},
			want: domain.ErrEmailAlreadyExists,
		},
		{
			name: "duplicate role assignment",
			err:  fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "user_roles_pkey"}),
			want: domain.ErrRoleAlreadyAssigned,
		},
		{
			name: "unknown role",
			err:  &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "user_roles_role_id_fkey"},
			want: domain.ErrRoleNotFound,
		},
		{
			name: "deleted user",
			err:  &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "user_roles_user_id_fkey"},
			want: domain.ErrUserNotFound,
		},
		{
			name: "age out of range",
			err:  &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "users_age_check"},
			want: domain.ErrInvalidField,
		},
		{
			name: "unrelated unique violation",
			err:  &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "other_key"},
			want: nil,
		},
		{
			name: "not a postgres error",
			err:  errors.New("connection reset"),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapConstraintError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapConstraintError_CheckDetails(t *testing.T) {
	got := mapConstraintError(&pgconn.PgError{Code: pgCheckViolation, ConstraintName: "users_age_check"})

	var derr domain.Error
	assert.True(t, errors.As(got, &derr))
	assert.Equal(t, "age", derr.GetDetails()[0].Field)
}

func TestOrderBy(t *testing.T) {
	assert.Equal(t, "ORDER BY LOWER(name) ASC, id ASC", orderBy(domain.SortNameAsc))
	assert.Equal(t, "ORDER BY LOWER(name) DESC, id ASC", orderBy(domain.SortNameDesc))
	assert.Equal(t, "ORDER BY id ASC", orderBy(domain.SortNone))
}
