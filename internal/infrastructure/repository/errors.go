package repository

import (
	"errors"

	"github.com/ipede/user-directory-service/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// mapConstraintError translates PostgreSQL constraint violations into domain
// errors. It returns nil for anything else.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		switch pgErr.ConstraintName {
		case "users_email_key":
			return domain.ErrEmailAlreadyExists
		case "user_roles_pkey":
			return domain.ErrRoleAlreadyAssigned
		}
	case pgForeignKeyViolation:
		switch pgErr.ConstraintName {
		case "user_roles_user_id_fkey":
			return domain.ErrUserNotFound
		case "user_roles_role_id_fkey":
			return domain.ErrRoleNotFound
		}
	case pgCheckViolation:
		field := "user"
		switch pgErr.ConstraintName {
		case "users_age_check":
			field = "age"
		case "users_name_check":
			field = "name"
		}
		return domain.ErrInvalidField.WithDetails([]domain.FieldError{
			{Field: field, Message: "value violates the " + pgErr.ConstraintName + " constraint"},
		})
	}
	return nil
}
