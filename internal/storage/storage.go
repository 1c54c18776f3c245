// Package storage opens the save repository selected by configuration
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/sparta-village/internal/config"
	"github.com/KirkDiggler/sparta-village/internal/repositories/characters"
)

// Store is an open save repository plus whatever must be closed with it
type Store struct {
	Repository characters.Repository
	Backend    string

	closers []func() error
}

// Close releases the backend's connections
func (s *Store) Close() error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	s.closers = nil
	return first
}

// Open connects the configured backend. Redis is pinged before use.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	store := &Store{Backend: cfg.Save.Backend}

	switch cfg.Save.Backend {
	case config.BackendFile:
		store.Repository = characters.NewFileRepository(&characters.FileRepoConfig{
			Dir: cfg.Save.Dir,
		})

	case config.BackendRedis:
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		client := redis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}

		store.Repository = characters.NewRedisRepository(&characters.RedisRepoConfig{
			Client: client,
		})
		store.closers = append(store.closers, client.Close)

	case config.BackendSQLite:
		repo, err := characters.OpenSQLite(&characters.SQLiteRepoConfig{
			Path: cfg.SQLite.Path,
		})
		if err != nil {
			return nil, err
		}
		store.Repository = repo
		store.closers = append(store.closers, repo.Close)

	case config.BackendMemory:
		store.Repository = characters.NewInMemoryRepository()

	default:
		return nil, fmt.Errorf("unknown save backend %q", cfg.Save.Backend)
	}

	slog.Debug("opened save storage", "backend", store.Backend)
	return store, nil
}
