package config_fx

import (
	"go.uber.org/fx"

	"autoescuelas/internal/infra/config"
	"autoescuelas/internal/infra/logger"
)

var Module = fx.Options(
	fx.Provide(config.Load),
	fx.Invoke(logger.Init),
)
