package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "marketplace/internal/errors"
	"marketplace/internal/service"
)

// ServiceHandler handles service and service type endpoints.
type ServiceHandler struct {
	svc service.ServiceService
}

// NewServiceHandler creates a new service handler.
func NewServiceHandler(svc service.ServiceService) *ServiceHandler {
	return &ServiceHandler{svc: svc}
}

// ListTypes godoc
// @Summary List service types
// @Tags ServiceType
// @Produce json
// @Success 200 {array} model.ServiceType
// @Router /service-type [get]
func (h *ServiceHandler) ListTypes(c echo.Context) error {
	types, err := h.svc.ListTypes(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, types)
}

// CreateType godoc
// @Summary Create service type
// @Tags ServiceType
// @Accept json
// @Produce json
// @Param type body service.CreateServiceTypeInput true "Service type"
// @Success 200 {object} model.ServiceType
// @Failure 400 {object} errors.ErrorResponse
// @Router /service-type [post]
func (h *ServiceHandler) CreateType(c echo.Context) error {
	var req service.CreateServiceTypeInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	st, err := h.svc.CreateType(c.Request().Context(), req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, st)
}

// Create godoc
// @Summary Create service
// @Tags Service
// @Accept json
// @Produce json
// @Param service body service.CreateServiceInput true "Service payload"
// @Success 200 {object} model.Service
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /service [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	var req service.CreateServiceInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	svc, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, svc)
}

// Show godoc
// @Summary Get service by id
// @Tags Service
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} model.Service
// @Failure 404 {object} errors.ErrorResponse
// @Router /service/{id} [get]
func (h *ServiceHandler) Show(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return fail(apperrors.ErrServiceNotFound)
	}
	svc, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, svc)
}
