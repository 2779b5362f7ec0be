package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "marketplace/internal/errors"
	"marketplace/internal/service"
)

// PetHandler handles pet type and breed endpoints.
type PetHandler struct {
	svc service.PetService
}

// NewPetHandler creates a new pet handler.
func NewPetHandler(svc service.PetService) *PetHandler {
	return &PetHandler{svc: svc}
}

// ListTypes godoc
// @Summary List pet types
// @Tags PetType
// @Produce json
// @Success 200 {array} model.PetType
// @Router /pet-type [get]
func (h *PetHandler) ListTypes(c echo.Context) error {
	types, err := h.svc.ListTypes(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, types)
}

// CreateType godoc
// @Summary Create pet type
// @Tags PetType
// @Accept json
// @Produce json
// @Param type body service.CreatePetTypeInput true "Pet type"
// @Success 200 {object} model.PetType
// @Failure 400 {object} errors.ErrorResponse
// @Router /pet-type [post]
func (h *PetHandler) CreateType(c echo.Context) error {
	var req service.CreatePetTypeInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	pt, err := h.svc.CreateType(c.Request().Context(), req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, pt)
}

// ListBreeds godoc
// @Summary List breeds
// @Tags Breed
// @Produce json
// @Param pet_type_id query int false "Only breeds of this pet type"
// @Success 200 {array} model.Breed
// @Failure 400 {object} errors.ErrorResponse
// @Router /breed [get]
func (h *PetHandler) ListBreeds(c echo.Context) error {
	var petTypeID uint
	if raw := c.QueryParam("pet_type_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return fail(apperrors.NewValidationError("pet_type_id must be a `number` type"))
		}
		petTypeID = uint(id)
	}
	breeds, err := h.svc.ListBreeds(c.Request().Context(), petTypeID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, breeds)
}

// CreateBreed godoc
// @Summary Create breed
// @Tags Breed
// @Accept json
// @Produce json
// @Param breed body service.CreateBreedInput true "Breed"
// @Success 200 {object} model.Breed
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /breed [post]
func (h *PetHandler) CreateBreed(c echo.Context) error {
	var req service.CreateBreedInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	breed, err := h.svc.CreateBreed(c.Request().Context(), req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, breed)
}
