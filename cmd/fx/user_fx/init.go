package user_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"autoescuelas/internal/repositories"
	"autoescuelas/internal/services"
)

var Module = fx.Provide(
	NewUserService, NewUserRepo)

func NewUserService(repo repositories.UserRepository) services.UserServiceInterface {
	return services.NewUserService(repo)
}

func NewUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}
