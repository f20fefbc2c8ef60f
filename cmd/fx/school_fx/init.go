package school_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"autoescuelas/internal/repositories"
	"autoescuelas/internal/services"
)

var Module = fx.Provide(
	NewSchoolService, NewSchoolRepo)

func NewSchoolService(repo repositories.SchoolRepository, cityRepo repositories.CityRepository) services.SchoolServiceInterface {
	return services.NewSchoolService(repo, cityRepo)
}

func NewSchoolRepo(db *gorm.DB) repositories.SchoolRepository {
	return repositories.NewSchoolRepository(db)
}
