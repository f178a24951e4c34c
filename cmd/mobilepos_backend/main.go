package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/mobilepos_backend/internal/adapters/archive"
	"github.com/SscSPs/mobilepos_backend/internal/adapters/backendapi"
	"github.com/SscSPs/mobilepos_backend/internal/core/services"
	"github.com/SscSPs/mobilepos_backend/internal/handlers"
	"github.com/SscSPs/mobilepos_backend/internal/middleware"
	"github.com/SscSPs/mobilepos_backend/internal/platform/config"
	"github.com/SscSPs/mobilepos_backend/internal/repositories"
	"github.com/SscSPs/mobilepos_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// @title MobilePOS Backend API
// @version 1.0
// @description Checkout reconciliation, shop settings and catalog imports for the MobilePOS front end.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	store, err := repositories.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open database", slog.String("driver", cfg.DBDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("Database ready", slog.String("driver", cfg.DBDriver))

	backend := backendapi.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout)
	gw := services.Gateways{Catalog: backend, Tickets: backend}

	if cfg.ImportArchiveBucket != "" {
		archiver, err := archive.NewGCSArchiver(ctx, cfg.ImportArchiveBucket)
		if err != nil {
			logger.Error("Failed to initialize import archive", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer archiver.Close()
		gw.Archiver = archiver
		logger.Info("Archiving uploaded imports", slog.String("bucket", cfg.ImportArchiveBucket))
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	serviceContainer := services.NewServiceContainer(cfg, store.Repos, gw)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, posthogClient); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("backend", cfg.BackendBaseURL))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
