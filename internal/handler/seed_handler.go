package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"marketplace/internal/auth"
	apperrors "marketplace/internal/errors"
	"marketplace/internal/seed"
)

// SeedHandler re-applies the reference data on a running server.
type SeedHandler struct {
	db            *gorm.DB
	logger        *zap.Logger
	adminEmail    string
	adminPassword string
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(db *gorm.DB, logger *zap.Logger, adminEmail, adminPassword string) *SeedHandler {
	return &SeedHandler{db: db, logger: logger, adminEmail: adminEmail, adminPassword: adminPassword}
}

// SeedResponse represents the seed response.
type SeedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// Run godoc
// @Summary Seed reference data
// @Description Inserts missing user types, store types, service types, pet types, permissions and the admin account.
// @Tags seed
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SeedResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /seed [post]
func (h *SeedHandler) Run(c echo.Context) error {
	if !auth.Check(auth.CallerFromContext(c), "admin") {
		return fail(apperrors.ErrUnauthorized)
	}

	res, err := seed.Run(c.Request().Context(), h.db, h.adminEmail, h.adminPassword)
	if err != nil {
		return fail(err)
	}
	h.logger.Info("reference data seeded", zap.Int("created", res.Created))

	return c.JSON(http.StatusOK, SeedResponse{
		Message: "Dados iniciais carregados",
		Count:   res.Created,
	})
}
