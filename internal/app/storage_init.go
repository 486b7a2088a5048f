package app

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/commerce/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/commerce/internal/health"
	"github.com/vladislavdragonenkov/commerce/internal/storage/memory"
	"github.com/vladislavdragonenkov/commerce/internal/storage/postgres"
)

// runtimeDependencies содержит хранилище и репозитории, выбранные по конфигурации.
type runtimeDependencies struct {
	orders          domain.OrderRepository
	products        domain.ProductRepository
	stocks          domain.StockRepository
	idempotencyRepo domain.IdempotencyRepository
	tx              domain.TxManager
	storageChecker  healthcheck.Checker
	closeFn         func() error
}

// initRuntimeDependencies создаёт репозитории поверх выбранного драйвера хранилища.
// Пустой драйвер трактуется как in-memory.
func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	switch strings.TrimSpace(cfg.StorageDriver) {
	case "", StorageDriverMemory:
		store := memory.NewStore()
		logger.Info("using in-memory storage")
		return &runtimeDependencies{
			orders:          memory.NewOrderRepository(store),
			products:        memory.NewProductRepository(store),
			stocks:          memory.NewStockRepository(store),
			idempotencyRepo: memory.NewIdempotencyRepository(),
			tx:              store,
		}, nil
	case StorageDriverPostgres:
		if strings.TrimSpace(cfg.PostgresDSN) == "" {
			return nil, fmt.Errorf("postgres storage driver requires PostgresDSN")
		}
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres storage: %w", err)
		}
		if cfg.PostgresAutoMigrate {
			if err := store.EnsureSchema(ctx); err != nil {
				_ = store.Close()
				return nil, fmt.Errorf("apply postgres migrations: %w", err)
			}
		}
		logger.Info("using postgres storage")
		return &runtimeDependencies{
			orders:          postgres.NewOrderRepository(store),
			products:        postgres.NewProductRepository(store),
			stocks:          postgres.NewStockRepository(store),
			idempotencyRepo: postgres.NewIdempotencyRepository(store),
			tx:              store,
			storageChecker:  healthcheck.NewPingChecker("postgres", store.Ping),
			closeFn:         store.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.StorageDriver)
	}
}

// closeStorage закрывает соединение с хранилищем, если оно было открыто.
func closeStorage(deps *runtimeDependencies, logger *log.Entry) {
	if deps == nil || deps.closeFn == nil {
		return
	}
	if err := deps.closeFn(); err != nil {
		logger.WithError(err).Warn("failed to close storage")
	}
}
