package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/marketsvc/internal/domain"
	"github.com/vladislavdragonenkov/marketsvc/internal/health"
	"github.com/vladislavdragonenkov/marketsvc/internal/storage/memory"
	"github.com/vladislavdragonenkov/marketsvc/internal/storage/postgres"
)

// Dependencies содержит хранилище и сопутствующие ресурсы приложения.
type Dependencies struct {
	Customers domain.CustomerRepository
	Orders    domain.OrderRepository
	Logger    *log.Entry

	// закрытие ресурсов postgres; nil для memory-хранилища
	store *postgres.Store
}

// NewDependencies инициализирует хранилище согласно конфигурации.
func NewDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	switch cfg.StorageDriver {
	case StorageDriverPostgres:
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres storage: %w", err)
		}
		if cfg.PostgresAutoSchema {
			if err := store.EnsureSchema(ctx); err != nil {
				_ = store.Close()
				return nil, fmt.Errorf("ensure schema: %w", err)
			}
		}
		if cfg.SeedDemoData {
			if err := store.Seed(ctx); err != nil {
				_ = store.Close()
				return nil, fmt.Errorf("seed demo data: %w", err)
			}
		}
		gw := postgres.NewGateway(store)
		logger.Info("using postgres storage")
		return &Dependencies{
			Customers: postgres.NewCustomerRepository(gw),
			Orders:    postgres.NewOrderRepository(gw),
			Logger:    logger,
			store:     store,
		}, nil

	case StorageDriverMemory, "":
		memStore := memory.NewStore()
		if cfg.SeedDemoData {
			memStore.SeedDemo()
		}
		logger.Info("using in-memory storage")
		return &Dependencies{
			Customers: memStore.Customers(),
			Orders:    memStore.Orders(),
			Logger:    logger,
		}, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

// RegisterHealthCheckers подключает проверки хранилища к health handler.
func (d *Dependencies) RegisterHealthCheckers(handler *health.Handler) {
	if d.store == nil {
		return
	}
	store := d.store
	handler.RegisterChecker("postgres", health.NewSimpleChecker("postgres", func() error {
		return store.Ping(context.Background())
	}))
}

// Close освобождает ресурсы хранилища.
func (d *Dependencies) Close() error {
	if d.store == nil {
		return nil
	}
	return d.store.Close()
}
