package handlers

import (
	"fmt"
	"net/http"

	"github.com/ipede/user-directory-service/internal/domain"
	"github.com/ipede/user-directory-service/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

type HandlerUser struct {
	userService domain.UserService
	logger      *zap.Logger
}

func NewUserHandler(userService domain.UserService, logger *zap.Logger) *HandlerUser {
	return &HandlerUser{
		userService: userService,
		logger:      logger,
	}
}

// ListUsersHandler godoc
// @Summary List users
// @Description Page through users filtered by age and sorted by name
// @Tags users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Param sort query string false "nameasc or namedesc" default(nameasc)
// @Param minAge query int false "Minimum age" default(0)
// @Param maxAge query int false "Maximum age" default(150)
// @Success 200 {object} domain.PagedUsersView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *HandlerUser) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	query, err := parseListQuery(r)
	if err != nil {
		respondError(w, h.logger, "invalid list query", err)
		return
	}

	page, err := h.userService.ListUsers(r.Context(), query)
	if err != nil {
		respondError(w, h.logger, "failed to list users", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, page)
}

func parseListQuery(r *http.Request) (domain.ListUsersQuery, error) {
	query := domain.DefaultListUsersQuery()
	q := r.URL.Query()

	var err error
	if query.Page, err = queryInt(q, "page", query.Page); err != nil {
		return query, err
	}
	if query.PageSize, err = queryInt(q, "pageSize", query.PageSize); err != nil {
		return query, err
	}
	if query.MinAge, err = queryInt(q, "minAge", query.MinAge); err != nil {
		return query, err
	}
	if query.MaxAge, err = queryInt(q, "maxAge", query.MaxAge); err != nil {
		return query, err
	}
	if sort := q.Get("sort"); sort != "" {
		query.Sort = sort
	}
	return query, nil
}

// GetUserHandler godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *HandlerUser) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.logger, "invalid user id", err)
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, "failed to get user", err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, dto.NewUserResponse(user))
}

// AddRoleHandler godoc
// @Summary Add a role to a user
// @Tags users
// @Param id path int true "User ID"
// @Param roleId path int true "Role ID"
// @Success 200
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/{id}/{roleId} [put]
func (h *HandlerUser) AddRoleHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.logger, "invalid user id", err)
		return
	}
	roleID, err := pathID(r, "roleId")
	if err != nil {
		respondError(w, h.logger, "invalid role id", err)
		return
	}

	if err := h.userService.AddRoleToUser(r.Context(), userID, roleID); err != nil {
		respondError(w, h.logger, "failed to add role", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// CreateUserHandler godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body domain.NewUser true "User to create"
// @Success 201 {object} dto.CreatedUserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users [post]
func (h *HandlerUser) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var candidate domain.NewUser
	present, err := decodeBody(r, &candidate)
	if err != nil {
		respondError(w, h.logger, "invalid create body", err)
		return
	}

	var req *domain.NewUser
	if present {
		req = &candidate
	}

	user, err := h.userService.AddNewUser(r.Context(), req)
	if err != nil {
		respondError(w, h.logger, "failed to create user", err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/users/%d", user.ID))
	writeJSON(w, h.logger, http.StatusCreated, dto.NewCreatedUserResponse(user))
}

// UpdateUserHandler godoc
// @Summary Partially update a user
// @Description Only fields present in the body are applied. A roles list replaces the role set.
// @Tags users
// @Accept json
// @Param id path int true "User ID"
// @Param patch body domain.UserPatch true "Fields to change"
// @Success 200
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *HandlerUser) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.logger, "invalid user id", err)
		return
	}

	var patch domain.UserPatch
	present, err := decodeBody(r, &patch)
	if err != nil {
		respondError(w, h.logger, "invalid update body", err)
		return
	}

	var req *domain.UserPatch
	if present {
		req = &patch
	}

	if err := h.userService.UpdateUserInfo(r.Context(), id, req); err != nil {
		respondError(w, h.logger, "failed to update user", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// DeleteUserHandler godoc
// @Summary Delete a user
// @Tags users
// @Param id path int true "User ID"
// @Success 200
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *HandlerUser) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, h.logger, "invalid user id", err)
		return
	}

	if err := h.userService.DeleteUser(r.Context(), id); err != nil {
		respondError(w, h.logger, "failed to delete user", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
