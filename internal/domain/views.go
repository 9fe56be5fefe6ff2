package domain

// UserView is the listing projection of a user. Name is not part of it.
type UserView struct {
	ID    int64  `json:"id"`
	Age   int    `json:"age"`
	Email string `json:"email"`
	Roles []Role `json:"roles"`
}

// PagedUsersView wraps one page of a user listing
type PagedUsersView struct {
	TotalCount int        `json:"totalCount"`
	TotalPages int        `json:"totalPages"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	Users      []UserView `json:"users"`
}

// NewUserView projects a user for listing
func NewUserView(u *User) UserView {
	roles := u.Roles
	if roles == nil {
		roles = []Role{}
	}
	return UserView{
		ID:    u.ID,
		Age:   u.Age,
		Email: u.Email,
		Roles: roles,
	}
}
