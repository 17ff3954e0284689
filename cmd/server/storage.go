package main

import (
	"context"
	"fmt"
	"log/slog"

	"lookupdesk/internal/kvstore"
	"lookupdesk/internal/kvstore/file"
	"lookupdesk/internal/kvstore/memory"
	"lookupdesk/internal/kvstore/postgres"
	kvredis "lookupdesk/internal/kvstore/redis"
	"lookupdesk/internal/platform/config"
	"lookupdesk/internal/platform/redis"
)

type storage struct {
	store  kvstore.Store
	health kvstore.HealthChecker
	close  func()
}

// openStorage selects the key-value backend named by STORAGE_BACKEND.
func openStorage(ctx context.Context, cfg config.Server, log *slog.Logger) (*storage, error) {
	switch cfg.Storage.Backend {
	case config.StorageMemory:
		log.Warn("using in-memory storage; cache and history are lost on restart")
		return &storage{store: memory.New(), close: func() {}}, nil

	case config.StorageFile:
		s := file.New(cfg.Storage.FilePath)
		return &storage{store: s, health: s, close: func() {}}, nil

	case config.StorageRedis:
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, fmt.Errorf("storage backend %q requires REDIS_URL", cfg.Storage.Backend)
		}
		s := kvredis.New(client.Client, cfg.Redis.KeyPrefix)
		return &storage{store: s, health: s, close: func() {
			if err := client.Close(); err != nil {
				log.Warn("closing redis client", "error", err)
			}
		}}, nil

	case config.StoragePostgres:
		if cfg.Storage.DatabaseURL == "" {
			return nil, fmt.Errorf("storage backend %q requires DATABASE_URL", cfg.Storage.Backend)
		}
		s, err := postgres.Open(ctx, cfg.Storage.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return &storage{store: s, health: s, close: func() {
			if err := s.Close(); err != nil {
				log.Warn("closing postgres", "error", err)
			}
		}}, nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}
