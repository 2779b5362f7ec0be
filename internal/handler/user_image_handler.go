package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "marketplace/internal/errors"
	"marketplace/internal/service"
)

// UserImageHandler handles gallery endpoints.
type UserImageHandler struct {
	svc service.UserImageService
}

// NewUserImageHandler creates a new gallery handler.
func NewUserImageHandler(svc service.UserImageService) *UserImageHandler {
	return &UserImageHandler{svc: svc}
}

// Create godoc
// @Summary Create gallery entry
// @Tags UserImage
// @Accept json
// @Produce json
// @Param entry body service.CreateUserImageInput true "Gallery entry"
// @Success 200 {object} model.UserImage
// @Failure 400 {object} errors.ErrorResponse
// @Router /user-image [post]
func (h *UserImageHandler) Create(c echo.Context) error {
	var req service.CreateUserImageInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	entry, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, entry)
}

// List godoc
// @Summary List gallery entries
// @Tags UserImage
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} ListResponse
// @Router /user-image [get]
func (h *UserImageHandler) List(c echo.Context) error {
	entries, count, err := h.svc.List(c.Request().Context(), queryInt(c, "limit"), queryInt(c, "offset"))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, ListResponse{Count: count, Rows: entries})
}

// Show godoc
// @Summary Get gallery entry by id
// @Tags UserImage
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} model.UserImage
// @Failure 404 {object} errors.ErrorResponse
// @Router /user-image/{id} [get]
func (h *UserImageHandler) Show(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return fail(apperrors.ErrUserImageNotFound)
	}
	entry, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, entry)
}
