// Package main is the entry point for Blackbox.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/studiostardust/blackbox/internal/config"
	"github.com/studiostardust/blackbox/internal/game"
	"github.com/studiostardust/blackbox/internal/gamedata"
	"github.com/studiostardust/blackbox/internal/logger"
	"github.com/studiostardust/blackbox/internal/telemetry"
	"github.com/studiostardust/blackbox/internal/ui"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_BLACKBOX_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if err := run(); err != nil {
		log.Fatalf("blackbox: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	lg, closeLog, err := logger.Setup(cfg)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			APIKey:      cfg.Honeycomb.APIKey,
			Dataset:     cfg.Honeycomb.Dataset,
			Environment: cfg.Environment,
		})
		switch {
		case errors.Is(err, telemetry.ErrNoAPIKey):
			lg.Info("telemetry disabled, no API key")
		case err != nil:
			// Continue without telemetry - game still works
			lg.Warn("telemetry setup failed, running without observability", "error", err)
		default:
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					lg.Error("telemetry shutdown failed", "error", err)
				}
			}()
		}
	}

	bundle, err := gamedata.LoadBundle()
	if err != nil {
		return fmt.Errorf("load game data: %w", err)
	}

	gameCfg := game.Config{
		Seed:         cfg.Seed,
		Level:        cfg.Level,
		TickInterval: cfg.TickInterval(),
		Logger:       lg,
	}
	w, err := game.NewWorld(ctx, gameCfg, bundle)
	if err != nil {
		return err
	}
	g := game.New(w, gameCfg)
	lg.Info("starting",
		"session_id", g.SessionID(),
		"level", cfg.Level,
		"seed", cfg.Seed,
		"x", w.Position.X,
		"y", w.Position.Y,
	)

	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	if err := g.Run(ctx, screen); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	lg.Debug("exiting cleanly")
	return nil
}
