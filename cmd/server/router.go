package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/presently/presently-api/internal/api"
	apiMiddleware "github.com/presently/presently-api/internal/api/middleware"
	"github.com/presently/presently-api/internal/service"
	"github.com/presently/presently-api/internal/service/auth"
)

// Banner is the plain-text body served at the root path.
const Banner = "Presently gift suggestion API"

// routerDeps are the services the router's handlers need.
type routerDeps struct {
	logger           *slog.Logger
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	userService      service.UserService
	giftService      service.GiftService
}

// newRouter creates the application router with all routes and middleware.
func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(deps.logger))

	authHandler := api.NewAuthHandler(deps.userService, deps.jwtService, deps.passwordVerifier)
	authMiddleware := apiMiddleware.NewAuthMiddleware(deps.jwtService)
	giftHandler := api.NewGiftHandler(deps.giftService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/me", authHandler.Me)

			r.Post("/recipients", giftHandler.CreateRecipient)
			r.Get("/recipients", giftHandler.ListRecipients)

			r.Post("/suggestions", giftHandler.GenerateSuggestions)

			r.Post("/saved-gifts", giftHandler.SaveGift)
			r.Get("/saved-gifts", giftHandler.ListSavedGifts)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeText(w, deps.logger, "OK")
	})
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeText(w, deps.logger, Banner)
	})

	return r
}

func writeText(w http.ResponseWriter, logger *slog.Logger, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		logger.Error("failed to write response", "error", err)
	}
}
