package main

import (
	"context"
	"log/slog"

	"mahalla/config"
	logs "mahalla/internal/infra/log"
	"mahalla/internal/infra/persistence/postgres"

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
		fx.Invoke(
			runMigrations,
		),
	).Run()
}

func runMigrations(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := postgres.Migrate(ctx, params.DB); err != nil {
				return err
			}
			params.Logger.Info("Emergency tables migrated")

			return params.Shutdown()
		},
	})
}
