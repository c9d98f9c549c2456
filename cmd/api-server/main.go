package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"ratehub/database"
	"ratehub/internal/cache"
	"ratehub/internal/config"
	"ratehub/internal/handler"
	"ratehub/internal/middleware"
	"ratehub/internal/repository"
	"ratehub/internal/service"

	"github.com/gin-gonic/gin"
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
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	statsCache, err := cache.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("could not connect to redis: %v", err)
	}
	if statsCache != nil {
		defer statsCache.Close()
		logger.Info("Connected to redis cache")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	ratingService := service.NewRatingService(ratingRepo)
	storeService := service.NewStoreService(storeRepo, ratingRepo)
	userService := service.NewUserService(userRepo, storeRepo, ratingRepo, statsCache, logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, cfg.AccessTokenTTL)
	storeHandler := handler.NewStoreHandler(storeService, ratingService)
	ownerHandler := handler.NewOwnerHandler(storeService)
	adminHandler := handler.NewAdminHandler(userService, storeService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRequired := middleware.AuthMiddleware(authService)
	loginLimiter := middleware.RateLimit(cfg.LoginRatePerMinute, cfg.LoginRateBurst)

	api := r.Group("/api")
	authHandler.RegisterRoutes(api, authRequired, loginLimiter)

	authenticated := api.Group("", authRequired)
	storeHandler.RegisterRoutes(authenticated)

	ownerRoutes := api.Group("", authRequired, middleware.RequireOwner())
	ownerHandler.RegisterRoutes(ownerRoutes)

	adminRoutes := api.Group("", authRequired, middleware.RequireAdmin())
	adminHandler.RegisterRoutes(adminRoutes)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("Server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
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
