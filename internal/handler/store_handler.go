package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "marketplace/internal/errors"
	"marketplace/internal/service"
)

// StoreHandler handles storefront endpoints.
type StoreHandler struct {
	svc service.StoreService
}

// NewStoreHandler creates a new store handler.
func NewStoreHandler(svc service.StoreService) *StoreHandler {
	return &StoreHandler{svc: svc}
}

// Create godoc
// @Summary Create store
// @Tags Store
// @Accept json
// @Produce json
// @Param store body service.CreateStoreInput true "Store payload"
// @Success 200 {object} model.Store
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /store [post]
func (h *StoreHandler) Create(c echo.Context) error {
	var req service.CreateStoreInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	store, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, store)
}

// List godoc
// @Summary List stores
// @Tags Store
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} ListResponse
// @Router /store [get]
func (h *StoreHandler) List(c echo.Context) error {
	stores, count, err := h.svc.List(c.Request().Context(), queryInt(c, "limit"), queryInt(c, "offset"))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, ListResponse{Count: count, Rows: stores})
}

// Show godoc
// @Summary Get store by id
// @Tags Store
// @Produce json
// @Param id path int true "Store ID"
// @Success 200 {object} model.Store
// @Failure 404 {object} errors.ErrorResponse
// @Router /store/{id} [get]
func (h *StoreHandler) Show(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return fail(apperrors.ErrStoreNotFound)
	}
	store, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, store)
}
