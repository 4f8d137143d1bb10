package main

import (
	"context"
	"flag"
	"log"
	"time"

	"ride-api/cmd"
	"ride-api/internal/data/repository"
	"ride-api/internal/wire"
	"ride-api/pkg/database"
	"ride-api/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("c", ".env", "Path to configuration file")
	flag.Parse()

	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.AutoMigrate {
		if err := database.Migrate(ctx, db, logger); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	repos := repository.NewRepository(db, logger)
	app := wire.Wiring(repos, config, logger)

	go cmd.SessionJanitor(ctx, app.Service.Auth, time.Hour, logger)

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}
