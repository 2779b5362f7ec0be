package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "marketplace/internal/errors"
	"marketplace/internal/service"
)

// ImageHandler serves stored images.
type ImageHandler struct {
	svc service.ImageService
}

// NewImageHandler creates a new image handler.
func NewImageHandler(svc service.ImageService) *ImageHandler {
	return &ImageHandler{svc: svc}
}

// Create godoc
// @Summary Upload an image
// @Tags Image
// @Accept json
// @Produce json
// @Param image body service.RequiredImageInput true "Encoded image"
// @Success 200 {object} model.Image
// @Failure 400 {object} errors.ErrorResponse
// @Router /image [post]
func (h *ImageHandler) Create(c echo.Context) error {
	var req service.RequiredImageInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	image, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, image)
}

// Show godoc
// @Summary Get image by id
// @Tags Image
// @Produce json
// @Param id path int true "Image ID"
// @Success 200 {object} model.Image
// @Failure 404 {object} errors.ErrorResponse
// @Router /image/{id} [get]
func (h *ImageHandler) Show(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return fail(apperrors.ErrImageNotFound)
	}
	image, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, image)
}
