package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"independent-director/internal/api/routes"
	"independent-director/internal/assistant"
	"independent-director/internal/config"
	"independent-director/internal/directory"
	"independent-director/internal/gateway"
	"independent-director/internal/logging"
	"independent-director/internal/payments"
	"independent-director/internal/session"
	"independent-director/internal/viewstate"
	"independent-director/pkg/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting Independent Director service")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis backs sessions, the directory snapshot and chat history. When it
	// is unreachable the service still starts; sessions fall back to process
	// memory and the snapshot is skipped.
	var sessionBlobs session.Blobs
	var historyKV assistant.HistoryKV
	var snapshot directory.Snapshot

	redisClient := utils.NewRedisClient(cfg)
	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	if err := redisClient.Ping(pingCtx); err != nil {
		logger.Warn("Redis unreachable, falling back to in-memory session storage", map[string]interface{}{
			"error": err.Error(),
		})
		memory := session.NewMemoryBlobs()
		sessionBlobs = memory
		historyKV = memory
	} else {
		sessionBlobs = redisClient
		historyKV = redisClient
		snapshot = directory.NewRedisSnapshot(redisClient, cfg.Directory.SnapshotTTL)
		defer redisClient.Close()
	}
	pingCancel()

	// Remote gateway and directory cache
	gatewayClient := gateway.NewClient(cfg)
	cache := directory.NewCache(gatewayClient, snapshot)

	cache.RestoreSnapshot(ctx)
	if err := cache.LoadAll(ctx); err != nil {
		// Snapshot (if any) keeps serving until the next refresh succeeds
		logger.Warn("Initial directory load failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	cache.StartRefresh(ctx, cfg.Directory.RefreshInterval)

	// Sessions and view state
	sessions := session.NewStore(cfg, sessionBlobs, gatewayClient)
	views := viewstate.NewRegistry()

	// Assistant
	assistantManager := assistant.NewManager(cfg)
	if err := assistantManager.Start(); err != nil {
		logger.Error("Failed to start assistant manager", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Payments
	paymentService := payments.NewService(gatewayClient)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	routes.SetupRoutes(e, routes.Dependencies{
		Config:    cfg,
		Gateway:   gatewayClient,
		Cache:     cache,
		Sessions:  sessions,
		Views:     views,
		Assistant: assistantManager,
		History:   assistant.NewHistoryStore(historyKV),
		Payments:  paymentService,
	})

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Stop the refresh loop
		cancel()

		logger.Info("Stopping assistant manager...")
		if err := assistantManager.Stop(); err != nil {
			logger.Error("Error stopping assistant manager", map[string]interface{}{
				"error": err.Error(),
			})
		}

		logger.Info("Stopping HTTP server...")
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{
				"error": err.Error(),
			})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Error("Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
