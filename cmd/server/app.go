package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/presently/presently-api/internal/config"
	"github.com/presently/presently-api/internal/gift"
	"github.com/presently/presently-api/internal/platform/gemini"
	"github.com/presently/presently-api/internal/platform/postgres"
	"github.com/presently/presently-api/internal/platform/unsplash"
	"github.com/presently/presently-api/internal/service"
	"github.com/presently/presently-api/internal/service/auth"
	"github.com/presently/presently-api/internal/store"
)

// application holds the shared dependencies so they can be wired once and
// cleaned up on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	userService      service.UserService
	giftService      service.GiftService
}

// newApplication wires stores, providers and services on top of an open database.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier()

	txRunner := store.NewTxRunner(db)
	userStore := postgres.NewPostgresUserStore(db, cfg.Auth.BcryptCost, logger)
	recipientStore := postgres.NewPostgresRecipientStore(db, logger)
	suggestionStore := postgres.NewPostgresSuggestionStore(db, logger)
	savedGiftStore := postgres.NewPostgresSavedGiftStore(db, logger)

	app.userService = service.NewUserService(userStore, txRunner, logger)

	generator, err := gemini.NewGeminiGenerator(ctx, logger.With("component", "llm_generator"), cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized", "model", cfg.LLM.ModelName)

	images := unsplash.NewClient(cfg.Images, nil, logger)
	pipeline := gift.NewPipeline(generator, images, gift.NewAssembler(cfg.Links), logger)

	app.giftService, err = service.NewGiftService(
		recipientStore,
		suggestionStore,
		savedGiftStore,
		pipeline,
		txRunner,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gift service: %w", err)
	}

	logger.Info("application initialized")
	return app, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	server := newHTTPServer(app.config.Server.Port, app.setupRouter())
	defer app.cleanup()

	if err := serve(ctx, server, app.logger); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// setupRouter builds the router from the application's services.
func (app *application) setupRouter() http.Handler {
	return newRouter(routerDeps{
		logger:           app.logger,
		jwtService:       app.jwtService,
		passwordVerifier: app.passwordVerifier,
		userService:      app.userService,
		giftService:      app.giftService,
	})
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}
	app.logger.Info("application shutdown completed")
}
