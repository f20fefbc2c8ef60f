package stats_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"autoescuelas/internal/repositories"
	"autoescuelas/internal/services"
)

var Module = fx.Provide(
	NewStatsService, NewStatsRepo)

func NewStatsService(repo repositories.StatsRepository) services.StatsServiceInterface {
	return services.NewStatsService(repo)
}

func NewStatsRepo(db *gorm.DB) repositories.StatsRepository {
	return repositories.NewStatsRepository(db)
}
