package city_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"autoescuelas/internal/repositories"
	"autoescuelas/internal/services"
)

var Module = fx.Provide(
	NewCityService, NewCityRepo)

func NewCityService(repo repositories.CityRepository) services.CityServiceInterface {
	return services.NewCityService(repo)
}

func NewCityRepo(db *gorm.DB) repositories.CityRepository {
	return repositories.NewCityRepository(db)
}
