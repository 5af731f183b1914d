// Package persistence selects the storage backend the repositories run on.
package persistence

import (
	"log/slog"

	"insurance/config"
	"insurance/internal/domain/repository"
	"insurance/internal/infra/persistence/memory"
	"insurance/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the storage provider, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is everything the use cases need from storage.
type Repositories struct {
	fx.Out

	TxManager    repository.TransactionManager
	CustomerRepo repository.CustomerRepository
	PolicyRepo   repository.PolicyRepository
	QuoteRepo    repository.QuoteRepository
	HistoryRepo  repository.PolicyHistoryRepository
}

// New builds the repositories for config.Storage.Driver. An empty driver means postgres.
func New(params Params) (Repositories, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage, data is lost on shutdown")

		store := memory.NewStore()

		return Repositories{
			TxManager:    memory.NewTransactionManager(store),
			CustomerRepo: memory.NewCustomerRepository(store),
			PolicyRepo:   memory.NewPolicyRepository(store),
			QuoteRepo:    memory.NewQuoteRepository(store),
			HistoryRepo:  memory.NewPolicyHistoryRepository(store),
		}, nil

	case config.StorageDriverPostgres, "":
		if params.Config.Postgres == nil {
			return Repositories{}, errors.New("postgres configuration is required for the postgres storage driver")
		}

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			TxManager:    postgres.NewTransactionManager(db),
			CustomerRepo: postgres.NewCustomerRepository(db),
			PolicyRepo:   postgres.NewPolicyRepository(db),
			QuoteRepo:    postgres.NewQuoteRepository(db),
			HistoryRepo:  postgres.NewPolicyHistoryRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}
