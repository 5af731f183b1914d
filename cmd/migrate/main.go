// Command migrate creates the schema and seeds the policy catalog, then exits.
package main

import (
	"context"
	"log/slog"

	"insurance/config"
	"insurance/internal/domain/lifecycle"
	logs "insurance/internal/infra/log"
	"insurance/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Decorate(disableAutoMigrate),
		fx.Invoke(runMigration),
	).Run()
}

// disableAutoMigrate keeps postgres.New from migrating in its own start hook;
// runMigration does it once with its own logging.
func disableAutoMigrate(cfg *config.Config) *config.Config {
	cfg.Storage.AutoMigrate = false

	return cfg
}

func runMigration(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := postgres.Migrate(ctx, params.DB, params.Logger); err != nil {
				params.Logger.Error("Migration failed", slog.Any("error", err))

				return params.Shutdown(fx.ExitCode(1))
			}

			return params.Shutdown()
		},
	})
}
