package application

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/ipede/user-directory-service/internal/domain"
	"go.uber.org/zap"
)

type UserService struct {
	users    domain.UserRepository
	roles    domain.RoleRepository
	validate *validator.Validate
	logger   *zap.Logger
}

func NewUserService(users domain.UserRepository, roles domain.RoleRepository, logger *zap.Logger) *UserService {
	return &UserService{
		users:    users,
		roles:    roles,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// ListUsers retrieves one page of users filtered by age and sorted by name.
// A page beyond the last one is rejected, which includes page 1 of an empty
// result.
func (s *UserService) ListUsers(ctx context.Context, query domain.ListUsersQuery) (*domain.PagedUsersView, error) {
	if query.Page <= 0 {
		return nil, domain.ErrInvalidPage
	}
	if query.PageSize <= 0 {
		return nil, domain.ErrInvalidPageSize
	}

	filter := domain.UserFilter{
		MinAge: query.MinAge,
		MaxAge: query.MaxAge,
		Sort:   domain.ParseUserSort(query.Sort),
	}

	totalCount, err := s.users.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := totalCount / query.PageSize
	if totalCount%query.PageSize != 0 {
		totalPages++
	}
	if query.Page > totalPages {
		return nil, domain.ErrPageOutOfRange
	}

	users, err := s.users.List(ctx, filter, query.PageSize, (query.Page-1)*query.PageSize)
	if err != nil {
		return nil, err
	}

	views := make([]domain.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, domain.NewUserView(u))
	}

	return &domain.PagedUsersView{
		TotalCount: totalCount,
		TotalPages: totalPages,
		Page:       query.Page,
		PageSize:   query.PageSize,
		Users:      views,
	}, nil
}

// GetUser retrieves a user by ID with its roles
func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}
	return user, nil
}

// AddRoleToUser associates a role with a user
func (s *UserService) AddRoleToUser(ctx context.Context, userID, roleID int64) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return notFound(err, userID)
	}

	role, err := s.roles.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return domain.ErrRoleNotFound.WithMessage("Role with ID %d not found.", roleID)
		}
		return err
	}

	if user.HasRole(role.ID) {
		return domain.ErrRoleAlreadyAssigned.WithMessage("Role %q already exists for user with ID %d.", role.Name, userID)
	}

	if err := s.users.AddRole(ctx, userID, role.ID); err != nil {
		if errors.Is(err, domain.ErrRoleAlreadyAssigned) {
			return domain.ErrRoleAlreadyAssigned.WithMessage("Role %q already exists for user with ID %d.", role.Name, userID)
		}
		return err
	}

	s.logger.Info("role added to user", zap.Int64("user_id", userID), zap.Int64("role_id", role.ID))
	return nil
}

// AddNewUser validates the candidate and creates a user without roles
func (s *UserService) AddNewUser(ctx context.Context, candidate *domain.NewUser) (*domain.User, error) {
	if candidate == nil {
		return nil, domain.ErrInvalidUser.WithMessage("User cannot be added.")
	}

	if err := s.validate.Struct(candidate); err != nil {
		return nil, domain.ErrInvalidField.
			WithMessage("Email, name and age are required. Age must be greater than 0.").
			WithDetails(fieldMessages(err))
	}

	exists, err := s.users.ExistsByEmail(ctx, candidate.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	user := &domain.User{
		Name:  candidate.Name,
		Age:   candidate.Age,
		Email: candidate.Email,
		Roles: []domain.Role{},
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created", zap.Int64("user_id", user.ID))
	return user, nil
}

// UpdateUserInfo merges the present patch fields into the user. An age that
// is not positive is ignored. A present role list replaces the role set;
// unknown role ids are skipped.
func (s *UserService) UpdateUserInfo(ctx context.Context, id int64, patch *domain.UserPatch) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return notFound(err, id)
	}

	if patch == nil {
		return domain.ErrInvalidUser
	}
	if err := s.validatePatch(patch); err != nil {
		return err
	}

	if patch.Name.Set {
		user.Name = patch.Name.Value
	}
	if patch.Email.Set {
		user.Email = patch.Email.Value
	}
	if patch.Age.Set && patch.Age.Value > 0 {
		user.Age = patch.Age.Value
	}

	if patch.Roles.Set {
		roles, err := s.resolveRoles(ctx, patch.Roles.Value)
		if err != nil {
			return err
		}
		user.Roles = roles
	}

	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("user updated", zap.Int64("user_id", id))
	return nil
}

// DeleteUser removes a user and its role associations
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return notFound(err, id)
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return notFound(err, id)
	}

	s.logger.Info("user deleted", zap.Int64("user_id", id))
	return nil
}

// resolveRoles looks up refs in request order, dropping unknown and
// repeated ids
func (s *UserService) resolveRoles(ctx context.Context, refs []domain.RoleRef) ([]domain.Role, error) {
	roles := []domain.Role{}
	if len(refs) == 0 {
		return roles, nil
	}

	ids := make([]int64, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}

	found, err := s.roles.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]domain.Role, len(found))
	for _, r := range found {
		byID[r.ID] = r
	}

	seen := make(map[int64]bool, len(refs))
	for _, ref := range refs {
		role, ok := byID[ref.ID]
		if !ok || seen[ref.ID] {
			continue
		}
		seen[ref.ID] = true
		roles = append(roles, role)
	}
	return roles, nil
}

func notFound(err error, id int64) error {
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.ErrUserNotFound.WithMessage("User with ID %d not found.", id)
	}
	return err
}
