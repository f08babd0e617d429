package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"billsnap/internal/api"
	"billsnap/internal/api/handlers"
	"billsnap/internal/service"
	"billsnap/pkg/config"
	"billsnap/pkg/logger"

	"go.uber.org/zap"
)

// @title billsnap API
// @version 1.0
// @description Gateway that turns bill/receipt images into structured transaction records via a vision model

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7524
// @BasePath /

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting billsnap gateway")

	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		appLogger.Fatal("Failed to create uploads directory", zap.Error(err))
	}

	gate := service.NewAccessGate(cfg.Access, cfg.Provider.APIKey)
	composer := service.NewPromptComposer()
	vision := service.NewVisionClient(cfg.Provider, appLogger)
	records := service.NewRecognitionService(gate, composer, vision, appLogger)

	processHandler := handlers.NewProcessHandler(records, appLogger)

	app := api.SetupRouter(processHandler, cfg.Server, cfg.Uploads.Dir)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
