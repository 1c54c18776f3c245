package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/sparta-village/internal/catalog"
	"github.com/KirkDiggler/sparta-village/internal/config"
	"github.com/KirkDiggler/sparta-village/internal/dice"
	"github.com/KirkDiggler/sparta-village/internal/logger"
	"github.com/KirkDiggler/sparta-village/internal/services"
	"github.com/KirkDiggler/sparta-village/internal/storage"
	"github.com/KirkDiggler/sparta-village/internal/uuid"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	if err := run(); err != nil {
		log.Fatalf("Village closed: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// game text goes to stdout, logs to stderr
	logger.Init(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		ServiceName: logger.DefaultServiceName,
	}, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, sessionID := logger.NewSession(ctx, uuid.NewRandomGenerator())

	cat, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to load catalog %q: %w", cfg.Catalog.Path, err)
	}

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.Save.Backend, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.FromContext(ctx).Warn("failed to close save storage", "error", err)
		}
	}()

	provider := services.NewProvider(&services.ProviderConfig{
		CharacterRepository: store.Repository,
		Catalog:             cat,
		Roller:              dice.NewRandomRoller(),
		DefaultName:         cfg.Player.Name,
		DefaultClass:        cfg.Player.Class,
	})

	logger.FromContext(ctx).Info("village opened",
		"session", sessionID,
		"backend", store.Backend,
		"slot", cfg.Save.Slot)

	g := &game{
		provider: provider,
		slot:     cfg.Save.Slot,
		in:       bufio.NewScanner(os.Stdin),
		out:      os.Stdout,
	}
	return g.run(ctx)
}
