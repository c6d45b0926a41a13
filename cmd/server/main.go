// Package main implements the entry point for the Presently API server,
// which stores recipient profiles and generates personalized gift suggestions.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/presently/presently-api/internal/config"
	"github.com/presently/presently-api/internal/platform/logger"
	"github.com/presently/presently-api/internal/platform/postgres"
)

// options holds the command-line flags.
type options struct {
	migrate string
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

// parseFlags parses args into options. An unknown migration command is an error.
func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("presently", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.migrate, "migrate", "",
		"run a database migration command (up, down, reset, status, version) and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.migrate != "" {
		if !slices.Contains(postgres.MigrationCommands, opts.migrate) {
			return opts, fmt.Errorf("unknown migration command %q", opts.migrate)
		}
	}
	return opts, nil
}

// run loads configuration, sets up logging and the database, then either
// runs the requested migration or serves HTTP until SIGINT/SIGTERM.
func run(args []string, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName)

	db, err := setupAppDatabase(cfg, log)
	if err != nil {
		return err
	}

	if opts.migrate != "" {
		defer func() { _ = db.Close() }()
		return postgres.Migrate(db, opts.migrate, log)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx, cfg, log, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}
