package repository

import (
	"context"
	"errors"

	"github.com/ipede/user-directory-service/internal/domain"
	"github.com/ipede/user-directory-service/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoleRepository struct {
	logger *zap.Logger
	db     *database.Postgres
}

func NewRoleRepository(db *database.Postgres, logger *zap.Logger) *RoleRepository {
	return &RoleRepository{db: db, logger: logger}
}

func (r *RoleRepository) FindByID(ctx context.Context, id int64) (*domain.Role, error) {
	role := &domain.Role{}
	err := r.db.QueryRow(ctx, "SELECT id, name FROM roles WHERE id = $1", id).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		r.logger.Error("failed to find role by id", zap.Int64("role_id", id), zap.Error(err))
		return nil, domain.ErrDatabaseQuery
	}
	return role, nil
}

func (r *RoleRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Role, error) {
	roles := []domain.Role{}
	if len(ids) == 0 {
		return roles, nil
	}

	rows, err := r.db.Query(ctx, "SELECT id, name FROM roles WHERE id = ANY($1) ORDER BY id", ids)
	if err != nil {
		r.logger.Error("failed to find roles", zap.Error(err))
		return nil, domain.ErrDatabaseQuery
	}
	defer rows.Close()

	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			r.logger.Error("failed to scan role", zap.Error(err))
			return nil, domain.ErrDatabaseQuery
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDatabaseQuery
	}
	return roles, nil
}
