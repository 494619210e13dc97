package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"

	"github.com/tournoi-uno/webapp/config"
	"github.com/tournoi-uno/webapp/db"
	"github.com/tournoi-uno/webapp/handlers"
	"github.com/tournoi-uno/webapp/repositories"
	api "github.com/tournoi-uno/webapp/routes"
	"github.com/tournoi-uno/webapp/services"
	"github.com/tournoi-uno/webapp/session"
	"github.com/tournoi-uno/webapp/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort), slog.Int("edition", cfg.CurrentEdition))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		}
	}()
	logger.Info("database connection established")

	ctx := context.Background()
	if err := db.InitSchema(ctx, dbConn); err != nil {
		logger.Error("failed to initialize schema", slog.Any("error", err))
		os.Exit(1)
	}

	// Repositories
	userRepo := repositories.NewPostgresUserRepository(dbConn)
	statsRepo := repositories.NewPostgresStatsRepository(dbConn)
	participantRepo := repositories.NewPostgresParticipantRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	editionRepo := repositories.NewPostgresEditionRepository(dbConn)
	logger.Info("repositories initialized")

	if err := editionRepo.EnsureExists(ctx, cfg.CurrentEdition); err != nil {
		logger.Error("failed to ensure current edition", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("current edition ready", slog.Int("edition", cfg.CurrentEdition))

	// Avatar mirroring is optional; without storage the telegram photo
	// URL is used as-is.
	var avatarService services.AvatarService
	if cfg.AvatarStorageConfigured() {
		uploader, err := storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		avatarService = services.NewAvatarService(uploader)
		logger.Info("avatar storage initialized")
	}

	// Services
	txRunner := repositories.NewTxRunner(dbConn)
	authService := services.NewAuthService(txRunner, userRepo, statsRepo, avatarService, logger)
	matchService := services.NewMatchService(matchRepo)
	homeService := services.NewHomeService(participantRepo, matchRepo, matchService, cfg.BasePrize, cfg.Commission)
	leaderboardService := services.NewLeaderboardService(statsRepo)
	profileService := services.NewProfileService(userRepo, statsRepo, participantRepo, matchRepo)
	participationService := services.NewParticipationService(participantRepo, cfg.EntryFee)
	adminService := services.NewAdminService(userRepo, participantRepo, matchRepo, editionRepo)
	logger.Info("services initialized")

	// HTTP layer
	sessions := session.NewManager(cfg.SecretKey)
	authHandler := handlers.NewAuthHandler(authService, sessions, cfg)
	pageHandler := handlers.NewPageHandler(homeService, cfg.CurrentEdition, cfg.BotUsername)
	matchHandler := handlers.NewMatchHandler(matchService, cfg.CurrentEdition)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	userHandler := handlers.NewUserHandler(profileService, cfg.CurrentEdition)
	adminHandler := handlers.NewAdminHandler(adminService, cfg.CurrentEdition)
	participationHandler := handlers.NewParticipationHandler(participationService, cfg.CurrentEdition)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		cfg,
		sessions,
		authHandler,
		pageHandler,
		matchHandler,
		leaderboardHandler,
		userHandler,
		adminHandler,
		participationHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
}
