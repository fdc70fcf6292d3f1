package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/anonto42/inkwell/backend/internal/router"
	"github.com/anonto42/inkwell/backend/pkg/config"
	"github.com/anonto42/inkwell/backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	// Initialize the connection pool
	pool, err := config.InitDB(cfg, zl)
	if err != nil {
		zl.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer config.CloseDB(pool, zl) // Ensure connections are closed when main exits

	e, err := router.New(pool, zl)
	if err != nil {
		zl.Fatal("Failed to set up routes", zap.Error(err))
	}

	// Start server
	zl.Info("Starting server", zap.String("port", cfg.Port))
	if err := e.Start(":" + cfg.Port); err != nil {
		zl.Error("Server stopped", zap.Error(err))
	}
}
