package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"autoescuelas/internal/infra"
	"autoescuelas/internal/infra/config"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg *config.AppConfig, lc fx.Lifecycle) (*gorm.DB, error) {
	db, err := infra.OpenPostgres(cfg)
	if err != nil {
		return nil, err
	}

	if err := infra.AutoMigrate(db); err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgres(db)
			return nil
		},
	})

	return db, nil
}
