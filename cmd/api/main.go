package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/boardwatchnyc/boardwatch/pkg/validator"

	"github.com/boardwatchnyc/boardwatch/internal/adapter/handler"
	"github.com/boardwatchnyc/boardwatch/internal/infrastructure/cache"
	"github.com/boardwatchnyc/boardwatch/internal/usecase/report"
	"github.com/boardwatchnyc/boardwatch/pkg/backend"
	"github.com/boardwatchnyc/boardwatch/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize cache store. Redis is optional; the in-memory store is
	// the default for single-instance deployments.
	var store cache.Store
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		store = cache.NewRedisStore(redisClient, logger)
	} else {
		log.Println("📦 Using in-memory cache (REDIS_ENABLED=false)")
		store = cache.NewMemoryStore()
	}

	// Initialize analysis backend client
	log.Println("🤖 Initializing analysis backend client...")
	backendClient := backend.NewClient(&cfg.Backend)

	// Probe the backend so misconfiguration surfaces at startup rather
	// than on the first request.
	probeCtx, probeCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := backendClient.Health(probeCtx); err != nil {
		log.Printf("⚠️  Analysis backend not reachable at %s: %v", cfg.Backend.BaseURL, err)
	} else {
		log.Printf("✅ Analysis backend reachable at %s", cfg.Backend.BaseURL)
	}
	probeCancel()

	// Initialize report service
	log.Println("📝 Initializing report service...")
	reportService := report.NewService(backendClient, store, cfg.Cache, logger)

	// Initialize meeting handler
	log.Println("🚀 Initializing meeting handler...")
	meetingHandler := handler.NewMeetingHandler(reportService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
