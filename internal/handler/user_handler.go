package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marketplace/internal/auth"
	apperrors "marketplace/internal/errors"
	"marketplace/internal/service"
)

// UserHandler bundles HTTP handlers.
type UserHandler struct {
	svc  service.UserService
	auth service.AuthService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService, authService service.AuthService) *UserHandler {
	return &UserHandler{svc: svc, auth: authService}
}

// Create godoc
// @Summary Create user
// @Tags User
// @Accept json
// @Produce json
// @Param user body service.CreateUserInput true "User payload"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /user [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req service.CreateUserInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	profile, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, newProfileResponse(profile))
}

// List godoc
// @Summary List users
// @Tags User
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Rows to skip"
// @Param query query string false "First name contains (case-insensitive)"
// @Param order query string false "JSON order, e.g. [[\"first_name\",\"ASC\"]]"
// @Param filter query string false "JSON filter object"
// @Success 200 {object} ListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /user/list [get]
func (h *UserHandler) List(c echo.Context) error {
	users, count, err := h.svc.List(c.Request().Context(), service.ListUsersInput{
		Limit:  queryInt(c, "limit"),
		Offset: queryInt(c, "offset"),
		Query:  c.QueryParam("query"),
		Order:  c.QueryParam("order"),
		Filter: c.QueryParam("filter"),
	})
	if err != nil {
		return fail(err)
	}

	rows := make([]UserResponse, 0, len(users))
	for i := range users {
		rows = append(rows, newUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, ListResponse{Count: count, Rows: rows})
}

// Me godoc
// @Summary Get the authenticated user
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user [get]
func (h *UserHandler) Me(c echo.Context) error {
	caller := auth.CallerFromContext(c)
	if caller == nil {
		return fail(apperrors.ErrUnauthorized)
	}
	profile, err := h.svc.Get(c.Request().Context(), caller.ID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, newProfileResponse(profile))
}

// Get godoc
// @Summary Get user by id
// @Tags User
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} UserResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return fail(apperrors.ErrUserNotFound)
	}
	profile, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, newProfileResponse(profile))
}

// SignIn godoc
// @Summary Sign in with email or access code
// @Tags User
// @Accept json
// @Produce json
// @Param credentials body service.SignInInput true "Credentials"
// @Param admin query bool false "Return the admin permission tree"
// @Success 200 {object} UserResponse
// @Success 200 {object} AdminSignInResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/sign_in [post]
func (h *UserHandler) SignIn(c echo.Context) error {
	var req service.SignInInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	admin := c.QueryParam("admin") == "true"
	result, err := h.auth.SignIn(c.Request().Context(), req, admin)
	if err != nil {
		return fail(err)
	}

	if admin {
		user := newUserResponse(result.Profile.User)
		user.UserType = nil
		user.Token = result.Token
		permissions := result.Permissions
		if permissions == nil {
			permissions = make([]service.PermissionGroup, 0)
		}
		return c.JSON(http.StatusOK, AdminSignInResponse{User: user, Permissions: permissions})
	}

	resp := newProfileResponse(result.Profile)
	resp.Token = result.Token
	return c.JSON(http.StatusOK, resp)
}

// SignOut godoc
// @Summary Revoke the bearer token
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /user/sign_out [post]
func (h *UserHandler) SignOut(c echo.Context) error {
	if err := h.auth.SignOut(c.Request().Context(), auth.ClaimsFromContext(c)); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Sessão encerrada"})
}

// Update godoc
// @Summary Update user
// @Tags User
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body service.UpdateUserInput true "Fields to change"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return fail(apperrors.ErrUserNotFound)
	}
	var req service.UpdateUserInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := h.svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, newUserResponse(user))
}

// UserTypes godoc
// @Summary List user types
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.UserType
// @Failure 401 {object} errors.ErrorResponse
// @Router /user/user-types [get]
func (h *UserHandler) UserTypes(c echo.Context) error {
	types, err := h.svc.UserTypes(c.Request().Context(), auth.CallerFromContext(c))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, types)
}

// Destroy godoc
// @Summary Delete user
// @Tags User
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/{id} [delete]
func (h *UserHandler) Destroy(c echo.Context) error {
	caller := auth.CallerFromContext(c)
	id, ok := pathID(c)
	if !ok {
		if !auth.Check(caller, "admin") {
			return fail(apperrors.ErrDeleteUnauthorized)
		}
		return fail(apperrors.ErrUserNotFound)
	}
	if err := h.svc.Destroy(c.Request().Context(), caller, id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Usuário excluído"})
}

// BulkDestroy godoc
// @Summary Delete several users
// @Tags User
// @Produce json
// @Security BearerAuth
// @Param bulk query string true "JSON array of ids, e.g. [1,2,3]"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /user/bulk [delete]
func (h *UserHandler) BulkDestroy(c echo.Context) error {
	caller := auth.CallerFromContext(c)
	if !auth.Check(caller, "admin") {
		return fail(apperrors.ErrDeleteUnauthorized)
	}
	ids, err := parseIDList(c.QueryParam("bulk"))
	if err != nil {
		return fail(err)
	}
	if err := h.svc.BulkDestroy(c.Request().Context(), caller, ids); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Usuários excluídos"})
}
