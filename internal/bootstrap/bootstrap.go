// Package bootstrap turns the effective configuration into the record store
// and view cache shared by the server and the loader CLI.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"insightboard/internal/insight/cache"
	"insightboard/internal/insight/store"
	"insightboard/internal/platform/config"
	"insightboard/internal/platform/mongo"
	"insightboard/internal/platform/postgres"
	"insightboard/internal/platform/redis"
	"insightboard/pkg/platform/circuit"
)

// Closer releases a backend connection.
type Closer func(ctx context.Context) error

func noopCloser(context.Context) error { return nil }

// OpenStore connects the configured record store. Remote backends are
// wrapped in a circuit breaker.
func OpenStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (store.Store, Closer, error) {
	switch cfg.Store.Driver {
	case config.StoreMemory:
		return store.NewInMemoryStore(), noopCloser, nil

	case config.StoreMongo:
		client, err := mongo.New(ctx, cfg.Mongo)
		if err != nil {
			return nil, noopCloser, err
		}
		return guard(store.NewMongoStore(client.Collection()), cfg, logger), client.Close, nil

	case config.StorePostgres:
		db, err := postgres.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, noopCloser, err
		}
		pg := store.NewPostgresStore(db, cfg.Postgres.Table)
		if err := pg.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, noopCloser, fmt.Errorf("ensure schema: %w", err)
		}
		return guard(pg, cfg, logger), func(context.Context) error { return db.Close() }, nil

	default:
		return nil, noopCloser, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// OpenCache connects the configured view cache. It returns a nil cache when
// caching is disabled.
func OpenCache(ctx context.Context, cfg config.Config) (cache.Cache, Closer, error) {
	switch cfg.Cache.Driver {
	case "", config.CacheNone:
		return nil, noopCloser, nil

	case config.CacheMemory:
		return cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL+time.Minute), noopCloser, nil

	case config.CacheRedis:
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, noopCloser, err
		}
		return cache.NewRedisCache(client.Client, cfg.Cache.TTL), func(context.Context) error { return client.Close() }, nil

	default:
		return nil, noopCloser, fmt.Errorf("unknown cache driver %q", cfg.Cache.Driver)
	}
}

func guard(next store.Store, cfg config.Config, logger *slog.Logger) store.Store {
	breaker := circuit.New("store-"+cfg.Store.Driver,
		circuit.WithFailureThreshold(cfg.Breaker.Failures),
		circuit.WithOpenTimeout(cfg.Breaker.OpenTimeout),
		circuit.WithStateChange(func(name string, from, to circuit.State) {
			logger.Warn("store circuit state changed", "breaker", name, "from", from, "to", to)
		}),
	)
	return store.NewGuarded(next, breaker)
}
