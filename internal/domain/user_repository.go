package domain

import "context"

// UserRepository defines the interface for user persistence. Every method
// returning users loads their roles.
type UserRepository interface {
	// Count counts the users matching the filter
	Count(ctx context.Context, filter UserFilter) (int, error)

	// List returns a window of the filtered, sorted users
	List(ctx context.Context, filter UserFilter, limit, offset int) ([]*User, error)

	// FindByID finds a user by ID; ErrUserNotFound if absent
	FindByID(ctx context.Context, id int64) (*User, error)

	// ExistsByEmail checks if a user exists with the given email
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create inserts the user and assigns its ID
	Create(ctx context.Context, user *User) error

	// Update persists the scalar fields and the full role set of the user
	Update(ctx context.Context, user *User) error

	// Delete deletes a user and its role associations
	Delete(ctx context.Context, id int64) error

	// AddRole associates a role with a user
	AddRole(ctx context.Context, userID, roleID int64) error
}

// RoleRepository defines read access to the provisioned roles
type RoleRepository interface {
	// FindByID finds a role by ID; ErrRoleNotFound if absent
	FindByID(ctx context.Context, id int64) (*Role, error)

	// FindByIDs returns the existing roles among ids, ordered by id
	FindByIDs(ctx context.Context, ids []int64) ([]Role, error)
}
