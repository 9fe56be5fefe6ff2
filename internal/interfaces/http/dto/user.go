package dto

import (
	"github.com/ipede/user-directory-service/internal/domain"
)

// UserResponse is a single user with its roles
type UserResponse struct {
	ID    int64         `json:"id"`
	Name  string        `json:"name"`
	Age   int           `json:"age"`
	Email string        `json:"email"`
	Roles []domain.Role `json:"roles"`
}

func NewUserResponse(user *domain.User) *UserResponse {
	roles := user.Roles
	if roles == nil {
		roles = []domain.Role{}
	}
	return &UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Age:   user.Age,
		Email: user.Email,
		Roles: roles,
	}
}

// CreatedUserResponse is returned after a user is created
type CreatedUserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Email string `json:"email"`
}

func NewCreatedUserResponse(user *domain.User) *CreatedUserResponse {
	return &CreatedUserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Age:   user.Age,
		Email: user.Email,
	}
}

type TokenResponse struct {
	Token string `json:"token"`
}
