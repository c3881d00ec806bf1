package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/binehq/bine-server/internal/config"
	"github.com/binehq/bine-server/internal/database"
	"github.com/binehq/bine-server/internal/handlers"
	"github.com/binehq/bine-server/internal/repositories"
	"github.com/binehq/bine-server/internal/services"
	"github.com/binehq/bine-server/internal/storage"
	"github.com/binehq/bine-server/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Initialize logger
	logger.Init()
	defer logger.Sync()

	logger.Info("Starting bine server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", err)
	}

	if cfg.AppEnv == "production" {
		if err := cfg.ValidateProductionSecurity(); err != nil {
			logger.Fatal("Production security validation failed", err)
		}
		logger.Info("Production security validation passed")
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}

	// Run GORM auto-migration
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Seed age-band categories
	if err := database.SeedCategories(db); err != nil {
		logger.Warn("Failed to seed categories", "error", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	friendRepo := repositories.NewFriendRepository(db)
	bookRepo := repositories.NewBookRepository(db)
	noteRepo := repositories.NewNoteRepository(db)

	// Services
	userService := services.NewUserService(userRepo, cfg.JWTSecret)
	friendService := services.NewFriendService(friendRepo, userRepo)
	bookService := services.NewBookService(bookRepo, cfg.BooksPageSize)
	noteService := services.NewNoteService(noteRepo, bookRepo, friendRepo)

	media := storage.NewMediaStore(cfg.MediaRoot)

	handler := handlers.NewHandler(cfg, userService, friendService, bookService, noteService, media)
	router := handler.SetupRouter(userRepo)

	server := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("Server listening", "port", cfg.AppPort, "env", cfg.AppEnv)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}

	logger.Info("Server stopped")
}
