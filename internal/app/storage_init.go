package app

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/wholesale-orders/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/wholesale-orders/internal/health"
	"github.com/vladislavdragonenkov/wholesale-orders/internal/storage/cache"
	"github.com/vladislavdragonenkov/wholesale-orders/internal/storage/memory"
	"github.com/vladislavdragonenkov/wholesale-orders/internal/storage/postgres"
)

type runtimeDependencies struct {
	repo         domain.OrderRepository
	outboxRepo   domain.OutboxRepository
	timelineRepo domain.TimelineRepository

	storageChecker healthcheck.Checker
	cacheChecker   healthcheck.Checker
	closeFn        func() error
}

func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (runtimeDependencies, error) {
	deps, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return runtimeDependencies{}, err
	}

	provider, err := cache.NewProvider(ctx, cache.Config{
		Provider: cfg.CacheProvider,
		RedisURL: cfg.CacheRedisURL,
		Size:     cfg.CacheSize,
	})
	if err != nil {
		_ = deps.close()
		return runtimeDependencies{}, fmt.Errorf("init cache: %w", err)
	}
	if provider == nil {
		return deps, nil
	}

	deps.repo = cache.NewOrderRepository(deps.repo, provider, cfg.CacheTTL, logger.WithField("layer", "cache"))
	if redisProvider, ok := provider.(*cache.RedisProvider); ok {
		deps.cacheChecker = healthcheck.NewOptionalChecker("cache", redisProvider.Ping)
	}

	storageClose := deps.closeFn
	deps.closeFn = func() error {
		cacheErr := provider.Close()
		if storageClose != nil {
			if err := storageClose(); err != nil {
				return err
			}
		}
		return cacheErr
	}
	logger.WithField("provider", cfg.CacheProvider).Info("order cache enabled")

	return deps, nil
}

func initStorage(ctx context.Context, cfg Config, logger *log.Entry) (runtimeDependencies, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	switch driver {
	case "", StorageDriverMemory:
		logger.Info("using in-memory storage")
		return runtimeDependencies{
			repo:         memory.NewOrderRepository(),
			outboxRepo:   memory.NewOutboxRepository(),
			timelineRepo: memory.NewTimelineRepository(),
		}, nil
	case StorageDriverPostgres:
		dsn := strings.TrimSpace(cfg.PostgresDSN)
		if dsn == "" {
			return runtimeDependencies{}, fmt.Errorf("postgres dsn is required for storage driver %q", StorageDriverPostgres)
		}

		store, err := postgres.Open(ctx, dsn, postgres.WithMaxConns(cfg.PostgresMaxConns))
		if err != nil {
			return runtimeDependencies{}, err
		}
		if cfg.PostgresAutoMigrate {
			if err := store.EnsureSchema(ctx); err != nil {
				_ = store.Close()
				return runtimeDependencies{}, fmt.Errorf("apply postgres migrations: %w", err)
			}
		}

		logger.Info("using postgres storage")
		return runtimeDependencies{
			repo:           postgres.NewOrderRepository(store),
			outboxRepo:     postgres.NewOutboxRepository(store),
			timelineRepo:   postgres.NewTimelineRepository(store),
			storageChecker: healthcheck.NewPingChecker("storage", store.Ping),
			closeFn:        store.Close,
		}, nil
	default:
		return runtimeDependencies{}, fmt.Errorf("unsupported storage driver: %s", cfg.StorageDriver)
	}
}

func (d runtimeDependencies) close() error {
	if d.closeFn == nil {
		return nil
	}
	return d.closeFn()
}
