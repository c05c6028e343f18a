// main.go
package main

import (
	"context"
	"log"
	"time"

	"wellness-tracker/cmd"
	"wellness-tracker/internal/data/repository"
	"wellness-tracker/internal/wire"
	"wellness-tracker/pkg/database"
	"wellness-tracker/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Seed stock affirmations on an empty table
	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := app.Service.Affirmation.Seed(seedCtx); err != nil {
		logger.Warn("Failed to seed affirmations", zap.Error(err))
	}
	cancel()

	// Start the sync code cleanup job; stopped after the server drains
	app.Cleanup.Start()
	defer app.Cleanup.Stop()

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
