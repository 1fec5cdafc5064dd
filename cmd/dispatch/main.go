// Dispatch agent server. Exposes the conversational transport-ops agent
// over HTTP and runs the background retention loop.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fleetops/dispatch/pkg/agent"
	"github.com/fleetops/dispatch/pkg/api"
	"github.com/fleetops/dispatch/pkg/cleanup"
	"github.com/fleetops/dispatch/pkg/config"
	"github.com/fleetops/dispatch/pkg/database"
	"github.com/fleetops/dispatch/pkg/llm"
	"github.com/fleetops/dispatch/pkg/ocr"
	"github.com/fleetops/dispatch/pkg/services"
	"github.com/fleetops/dispatch/pkg/tools"
	"github.com/fleetops/dispatch/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting dispatch agent",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain collaborators
	sessionService := services.NewSessionService(dbClient.Client)
	toolRegistry := tools.New(dbClient, cfg.Agent)
	llmClient := llm.NewClient(cfg.LLM)

	// Note: grpc.NewClient uses lazy dialing; the actual connection
	// happens on the first extraction call.
	ocrClient, err := ocr.NewClient(cfg.OCR)
	if err != nil {
		slog.Error("Failed to initialize OCR client", "addr", cfg.OCR.Address, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := ocrClient.Close(); err != nil {
			slog.Error("Error closing OCR client", "error", err)
		}
	}()

	// 4. Build the agent graph. This fails fast when the dispatch table
	// and the action registry have drifted.
	ag, err := agent.New(toolRegistry, llmClient, sessionService, cfg.Agent)
	if err != nil {
		slog.Error("Failed to build agent", "error", err)
		os.Exit(1)
	}
	slog.Info("Agent graph built")

	// 5. Background retention loop
	cleanupService := cleanup.NewService(cfg.Retention, sessionService, dbClient.Client)
	cleanupService.Start(ctx)

	// 6. HTTP server
	apiKey := os.Getenv(cfg.Server.APIKeyEnv)
	if apiKey == "" {
		slog.Error("API key environment variable is not set", "env", cfg.Server.APIKeyEnv)
		os.Exit(1)
	}

	server := api.NewServer(ag, sessionService, ocrClient, dbClient, cfg.Server, apiKey)
	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Dispatch agent started successfully")

	// 7. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 8. Graceful shutdown
	cleanupService.Stop()
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
