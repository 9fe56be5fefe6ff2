package repository

import (
	"context"
	"errors"

	"github.com/ipede/user-directory-service/internal/domain"
	"github.com/ipede/user-directory-service/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository struct {
	logger *zap.Logger
	db     *database.Postgres
}

func NewUserRepository(db *database.Postgres, logger *zap.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

func orderBy(sort domain.UserSort) string {
	switch sort {
	case domain.SortNameAsc:
		return "ORDER BY LOWER(name) ASC, id ASC"
	case domain.SortNameDesc:
		return "ORDER BY LOWER(name) DESC, id ASC"
	}
	return "ORDER BY id ASC"
}

func (r *UserRepository) Count(ctx context.Context, filter domain.UserFilter) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM users WHERE age BETWEEN $1 AND $2
	`, filter.MinAge, filter.MaxAge).Scan(&count)
	if err != nil {
		r.logger.Error("failed to count users", zap.Error(err))
		return 0, domain.ErrDatabaseQuery
	}
	return count, nil
}

func (r *UserRepository) List(ctx context.Context, filter domain.UserFilter, limit, offset int) ([]*domain.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, age, email
		FROM users
		WHERE age BETWEEN $1 AND $2
		`+orderBy(filter.Sort)+`
		LIMIT $3 OFFSET $4
	`, filter.MinAge, filter.MaxAge, limit, offset)
	if err != nil {
		r.logger.Error("failed to list users", zap.Error(err))
		return nil, domain.ErrDatabaseQuery
	}
	defer rows.Close()

	users := []*domain.User{}
	for rows.Next() {
		user := &domain.User{Roles: []domain.Role{}}
		if err := rows.Scan(&user.ID, &user.Name, &user.Age, &user.Email); err != nil {
			r.logger.Error("failed to scan user", zap.Error(err))
			return nil, domain.ErrDatabaseQuery
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("failed to iterate users", zap.Error(err))
		return nil, domain.ErrDatabaseQuery
	}

	if err := r.loadRoles(ctx, users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	user := &domain.User{Roles: []domain.Role{}}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, age, email FROM users WHERE id = $1
	`, id).Scan(&user.ID, &user.Name, &user.Age, &user.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		r.logger.Error("failed to find user by id", zap.Int64("user_id", id), zap.Error(err))
		return nil, domain.ErrDatabaseQuery
	}

	if err := r.loadRoles(ctx, []*domain.User{user}); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))", email).Scan(&exists)
	if err != nil {
		r.logger.Error("failed to check if user exists", zap.Error(err))
		return false, domain.ErrDatabaseQuery
	}
	return exists, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (name, age, email)
		VALUES ($1, $2, $3)
		RETURNING id
	`, user.Name, user.Age, user.Email).Scan(&user.ID)
	if err != nil {
		return r.translate("failed to create user", err)
	}
	return nil
}

// Update writes the scalar fields and replaces the role set in one transaction
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	err := r.db.WithTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE users
			SET name = $1, age = $2, email = $3
			WHERE id = $4
		`, user.Name, user.Age, user.Email, user.ID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrUserNotFound
		}

		if _, err := tx.Exec(ctx, "DELETE FROM user_roles WHERE user_id = $1", user.ID); err != nil {
			return err
		}

		if len(user.Roles) == 0 {
			return nil
		}
		roleIDs := make([]int64, 0, len(user.Roles))
		for _, role := range user.Roles {
			roleIDs = append(roleIDs, role.ID)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO user_roles (user_id, role_id)
			SELECT $1, unnest($2::bigint[])
		`, user.ID, roleIDs)
		return err
	})
	if err != nil {
		return r.translate("failed to update user", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return r.translate("failed to delete user", err)
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) AddRole(ctx context.Context, userID, roleID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_roles (user_id, role_id)
		VALUES ($1, $2)
	`, userID, roleID)
	if err != nil {
		return r.translate("failed to add role to user", err)
	}
	return nil
}

// loadRoles fills the role sets of users with a single query
func (r *UserRepository) loadRoles(ctx context.Context, users []*domain.User) error {
	if len(users) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.User, len(users))
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		byID[u.ID] = u
		ids = append(ids, u.ID)
	}

	rows, err := r.db.Query(ctx, `
		SELECT ur.user_id, r.id, r.name
		FROM user_roles ur
		JOIN roles r ON r.id = ur.role_id
		WHERE ur.user_id = ANY($1)
		ORDER BY ur.user_id, r.id
	`, ids)
	if err != nil {
		r.logger.Error("failed to load user roles", zap.Error(err))
		return domain.ErrDatabaseQuery
	}
	defer rows.Close()

	for rows.Next() {
		var userID int64
		var role domain.Role
		if err := rows.Scan(&userID, &role.ID, &role.Name); err != nil {
			r.logger.Error("failed to scan user role", zap.Error(err))
			return domain.ErrDatabaseQuery
		}
		if u, ok := byID[userID]; ok {
			u.Roles = append(u.Roles, role)
		}
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("failed to iterate user roles", zap.Error(err))
		return domain.ErrDatabaseQuery
	}
	return nil
}

// translate maps constraint violations to domain errors and logs the rest
func (r *UserRepository) translate(msg string, err error) error {
	var derr domain.Error
	if errors.As(err, &derr) {
		return err
	}
	if mapped := mapConstraintError(err); mapped != nil {
		return mapped
	}
	r.logger.Error(msg, zap.Error(err))
	return domain.ErrDatabaseQuery
}
