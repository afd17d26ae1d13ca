package main

import (
	"log"

	"cinema-ebooking/cmd"
	"cinema-ebooking/internal/adaptor"
	"cinema-ebooking/internal/data/repository"
	"cinema-ebooking/internal/notify"
	"cinema-ebooking/internal/usecase"
	"cinema-ebooking/internal/wire"
	"cinema-ebooking/pkg/database"
	"cinema-ebooking/pkg/utils"

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

	// Wire all dependencies
	repos := repository.NewRepository(db, logger)
	mailer := notify.NewMailer(config.SMTP, config.App.FrontendURL, logger)
	services := usecase.NewService(repos, db, mailer, config, logger)
	handler := adaptor.NewHandler(services, logger)
	router := wire.NewRouter(db, repos, handler, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(router, config.App.Port, logger)
}
