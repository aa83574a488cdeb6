// File: backbar/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backbar/config"
	"backbar/handlers"
	"backbar/middleware"
	"backbar/routes"
	"backbar/services/availability"
	"backbar/services/meevo"
	"backbar/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitAuthCache()
	utils.InitRosterCache()
	utils.StartHealthMonitor([]*redis.Client{utils.AuthCacheClient, utils.RosterCacheClient})

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Upstream client and engine.
	meevoClient := meevo.NewClient()
	engine := &availability.DefaultAvailabilityEngine{
		Auth:          meevoClient,
		Directory:     meevoClient,
		Scanner:       meevoClient,
		Services:      meevo.NewServiceTable(config.AppConfig.ServiceAliases),
		LocationID:    config.AppConfig.MeevoLocationID,
		MaxGapMinutes: config.AppConfig.MaxGapMinutes,
		PreviewCap:    config.AppConfig.PreviewCap,
	}

	availabilityHandler := handlers.NewAvailabilityHandler(engine, logger)
	routes.RegisterRoutes(router, availabilityHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
