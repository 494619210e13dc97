package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tournoi-uno/webapp/config"
	"github.com/tournoi-uno/webapp/handlers"
	"github.com/tournoi-uno/webapp/middleware"
	"github.com/tournoi-uno/webapp/session"
)

func SetupRoutes(
	router *chi.Mux,
	cfg *config.Config,
	sessions *session.Manager,
	authHandler *handlers.AuthHandler,
	pageHandler *handlers.PageHandler,
	matchHandler *handlers.MatchHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	userHandler *handlers.UserHandler,
	adminHandler *handlers.AdminHandler,
	participationHandler *handlers.ParticipationHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))
	router.Use(middleware.LoadSession(sessions))

	// Public pages
	router.Get("/", pageHandler.Home)
	router.Get("/login", pageHandler.Login)
	router.Get("/inscription", pageHandler.Inscription)
	router.Get("/matchs", matchHandler.List)
	router.Get("/classement", leaderboardHandler.Standings)
	router.Get("/logout", authHandler.Logout)
	router.Get("/mentions-legales", pageHandler.Legal("mentions-legales"))
	router.Get("/cgu", pageHandler.Legal("cgu"))
	router.Get("/politique-confidentialite", pageHandler.Legal("politique-confidentialite"))

	// Public API
	router.Post("/api/telegram-auth", authHandler.TelegramAuth)
	router.Post("/api/inscription", authHandler.Register)

	// Logged-in area
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.Get("/dashboard", userHandler.Dashboard)
		r.Get("/profil", userHandler.Profile)
		r.Post("/api/participation", participationHandler.Register)
	})

	// Admin area
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/admin", adminHandler.Overview)
	})
}
