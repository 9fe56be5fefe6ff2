package domain

import "context"

// UserService defines the interface for user directory operations
type UserService interface {
	// ListUsers returns one page of the filtered, sorted users
	ListUsers(ctx context.Context, query ListUsersQuery) (*PagedUsersView, error)
	// GetUser retrieves a user with its roles
	GetUser(ctx context.Context, id int64) (*User, error)
	// AddRoleToUser associates an existing role with a user
	AddRoleToUser(ctx context.Context, userID, roleID int64) error
	// AddNewUser validates and creates a user
	AddNewUser(ctx context.Context, candidate *NewUser) (*User, error)
	// UpdateUserInfo applies a partial update
	UpdateUserInfo(ctx context.Context, id int64, patch *UserPatch) error
	// DeleteUser removes a user
	DeleteUser(ctx context.Context, id int64) error
}
