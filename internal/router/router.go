package router

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"marketplace/docs"
	"marketplace/internal/auth"
	"marketplace/internal/config"
	"marketplace/internal/handler"
	"marketplace/internal/logging"
	"marketplace/internal/metrics"
)

// Handlers groups the resource handlers mounted by Register.
type Handlers struct {
	User      *handler.UserHandler
	Image     *handler.ImageHandler
	Store     *handler.StoreHandler
	UserImage *handler.UserImageHandler
	Service   *handler.ServiceHandler
	Pet       *handler.PetHandler
	Seed      *handler.SeedHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	logger *zap.Logger,
	httpMetrics *metrics.HTTPMetrics,
	jwtService *auth.JWTService,
	users auth.UserLoader,
	revoked auth.RevocationList,
	h Handlers,
) {
	e.Use(middleware.RequestID())
	e.Use(logging.RequestLogger(logger))
	e.Use(httpMetrics.Middleware())
	e.Use(middleware.Recover())

	e.Validator = handler.NewValidator()

	if cfg.SwaggerHost != "" {
		host := strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
		docs.SwaggerInfo.Host = strings.TrimSuffix(host, "/")
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", httpMetrics.Handler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	bearer := auth.Bearer(jwtService, users, revoked)

	// User
	e.POST("/user", h.User.Create)
	e.GET("/user", h.User.Me, bearer)
	e.GET("/user/list", h.User.List)
	e.GET("/user/user-types", h.User.UserTypes, bearer)
	e.POST("/user/sign_in", h.User.SignIn)
	e.POST("/user/login", h.User.SignIn)
	e.POST("/user/sign_out", h.User.SignOut, bearer)
	e.DELETE("/user/bulk", h.User.BulkDestroy, bearer)
	e.GET("/user/:id", h.User.Get)
	e.PUT("/user/:id", h.User.Update)
	e.DELETE("/user/:id", h.User.Destroy, bearer)

	// Image
	e.GET("/image/:id", h.Image.Show)
	e.POST("/image", h.Image.Create)

	// Store
	e.GET("/store", h.Store.List)
	e.POST("/store", h.Store.Create)
	e.GET("/store/:id", h.Store.Show)

	// Gallery
	e.POST("/user-image", h.UserImage.Create)
	e.GET("/user-image", h.UserImage.List)
	e.GET("/user-image/:id", h.UserImage.Show)

	// Service
	e.GET("/service-type", h.Service.ListTypes)
	e.POST("/service-type", h.Service.CreateType)
	e.POST("/service", h.Service.Create)
	e.GET("/service/:id", h.Service.Show)

	// Pet
	e.GET("/pet-type", h.Pet.ListTypes)
	e.POST("/pet-type", h.Pet.CreateType)
	e.GET("/breed", h.Pet.ListBreeds)
	e.POST("/breed", h.Pet.CreateBreed)

	e.POST("/seed", h.Seed.Run, bearer)
}
