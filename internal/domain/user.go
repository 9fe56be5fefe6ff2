package domain

import "strings"

const (
	MinUserAge = 0
	MaxUserAge = 150
)

// Role is a fixed, store-provisioned role a user can be associated with
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Seeded role identities
const (
	RoleUser       int64 = 1
	RoleAdmin      int64 = 2
	RoleSupport    int64 = 3
	RoleSuperAdmin int64 = 4
)

// User represents a user in the directory
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Email string `json:"email"`
	Roles []Role `json:"roles"`
}

// NewUser is the candidate submitted to create a user
type NewUser struct {
	Name  string `json:"name" validate:"required"`
	Age   int    `json:"age" validate:"gt=0,lte=150"`
	Email string `json:"email" validate:"required,email"`
}

// RoleRef references a role by identity
type RoleRef struct {
	ID int64 `json:"id"`
}

// UserPatch carries a partial update. Only fields whose Set flag is true are
// considered by the update operation.
type UserPatch struct {
	Name  Optional[string]    `json:"name"`
	Email Optional[string]    `json:"email"`
	Age   Optional[int]       `json:"age"`
	Roles Optional[[]RoleRef] `json:"roles"`
}

// HasRole checks if the user has the role with the given id
func (u *User) HasRole(roleID int64) bool {
	for _, r := range u.Roles {
		if r.ID == roleID {
			return true
		}
	}
	return false
}

// AddRole appends a role unless the user already holds it
func (u *User) AddRole(role Role) bool {
	if u.HasRole(role.ID) {
		return false
	}
	u.Roles = append(u.Roles, role)
	return true
}

// UserSort selects the ordering of a user listing
type UserSort int

const (
	// SortNone leaves the store-native ordering
	SortNone UserSort = iota
	SortNameAsc
	SortNameDesc
)

// ParseUserSort maps the sort query value. Unknown values yield SortNone.
func ParseUserSort(s string) UserSort {
	switch strings.ToLower(s) {
	case "nameasc":
		return SortNameAsc
	case "namedesc":
		return SortNameDesc
	}
	return SortNone
}

// ListUsersQuery holds the paging, filtering and sorting inputs of a listing
type ListUsersQuery struct {
	Page     int
	PageSize int
	Sort     string
	MinAge   int
	MaxAge   int
}

// DefaultListUsersQuery returns the query used when no parameters are given
func DefaultListUsersQuery() ListUsersQuery {
	return ListUsersQuery{
		Page:     1,
		PageSize: 10,
		Sort:     "nameasc",
		MinAge:   MinUserAge,
		MaxAge:   MaxUserAge,
	}
}

// UserFilter is the store-level selection of a listing
type UserFilter struct {
	MinAge int
	MaxAge int
	Sort   UserSort
}
