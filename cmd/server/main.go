package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	_ "marketplace/docs" // swagger docs

	"marketplace/internal/auth"
	"marketplace/internal/cache"
	"marketplace/internal/config"
	"marketplace/internal/db"
	"marketplace/internal/handler"
	"marketplace/internal/logging"
	"marketplace/internal/metrics"
	"marketplace/internal/repository"
	"marketplace/internal/router"
	"marketplace/internal/service"
)

// @title Marketplace API
// @version 1.0
// @description Marketplace API: users, stores, images, services and admin permissions.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN, logger)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}

	if cfg.ResetDB {
		logger.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			logger.Fatal("reset database", zap.Error(err))
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, "marketplace:")
	defer cacheClient.Close()
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		logger.Warn("redis unavailable, running without cache", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	cancel()

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	addressRepo := repository.NewAddressRepository(gormDB)
	imageRepo := repository.NewImageRepository(gormDB)
	userAdminRepo := repository.NewUserAdminRepository(gormDB)
	storeRepo := repository.NewStoreRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	permissionService := service.NewPermissionService(userAdminRepo, jwtService)
	authService := service.NewAuthService(userRepo, jwtService, permissionService, tokenStore)
	userService := service.NewUserService(userRepo, imageRepo, addressRepo, cacheClient)
	imageService := service.NewImageService(imageRepo)
	storeService := service.NewStoreService(storeRepo, repository.NewStoreTypeRepository(gormDB))
	userImageService := service.NewUserImageService(repository.NewUserImageRepository(gormDB))
	serviceService := service.NewServiceService(
		repository.NewServiceTypeRepository(gormDB),
		repository.NewServiceRepository(gormDB),
		storeRepo,
		imageRepo,
	)
	petService := service.NewPetService(repository.NewPetTypeRepository(gormDB), repository.NewBreedRepository(gormDB))

	e := echo.New()
	e.HideBanner = true

	router.Register(e, cfg, logger, metrics.New(), jwtService, userRepo, tokenStore, router.Handlers{
		User:      handler.NewUserHandler(userService, authService),
		Image:     handler.NewImageHandler(imageService),
		Store:     handler.NewStoreHandler(storeService),
		UserImage: handler.NewUserImageHandler(userImageService),
		Service:   handler.NewServiceHandler(serviceService),
		Pet:       handler.NewPetHandler(petService),
		Seed:      handler.NewSeedHandler(gormDB, logger, cfg.SeedAdminEmail, cfg.SeedAdminPassword),
	})

	logger.Info("swagger documentation available", zap.String("url", swaggerURL(cfg.SwaggerHost, cfg.ServerPort)))

	addr := ":" + cfg.ServerPort
	logger.Info("starting server", zap.String("addr", addr), zap.String("db_driver", cfg.DBDriver))
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server start", zap.Error(err))
	}
}

// swaggerURL builds the docs URL; host may already carry a scheme.
func swaggerURL(host, port string) string {
	if host == "" {
		host = "localhost:" + port
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return strings.TrimSuffix(host, "/") + "/swagger/index.html"
}
