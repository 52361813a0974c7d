package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"dormhub/database"
	"dormhub/internal/config"
	"dormhub/internal/httpapi/handler"
	"dormhub/internal/httpapi/middleware"
	"dormhub/internal/httpapi/repository"
	"dormhub/internal/httpapi/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	universityRepo := repository.NewUniversityRepository(db)
	residenceRepo := repository.NewResidenceRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, cfg)
	universityService := service.NewUniversityService(universityRepo)
	residenceService := service.NewResidenceService(residenceRepo, universityRepo)
	reviewService := service.NewReviewService(reviewRepo, residenceRepo, userRepo)
	userService := service.NewUserService(userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	universityHandler := handler.NewUniversityHandler(universityService, logger)
	residenceHandler := handler.NewResidenceHandler(residenceService, logger)
	reviewHandler := handler.NewReviewHandler(reviewService, logger)
	userHandler := handler.NewUserHandler(userService, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", middleware.TokenHeader},
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is running..."})
	})

	authRequired := middleware.AuthRequired(authService)
	adminOnly := middleware.AdminOnly()
	authRateLimit := middleware.RateLimit(cfg.AuthRateLimit, cfg.AuthRateBurst)

	api := r.Group("/api")
	authHandler.RegisterRoutes(api, authRateLimit)
	universityHandler.RegisterRoutes(api, authRequired, adminOnly)
	userHandler.RegisterRoutes(api, authRequired, adminOnly)

	residences := api.Group("/residences")
	residenceHandler.RegisterRoutes(residences, authRequired, adminOnly)
	reviewHandler.RegisterRoutes(residences, authRequired)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("Server running", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
