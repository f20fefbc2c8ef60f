package blog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"autoescuelas/internal/repositories"
	"autoescuelas/internal/services"
)

var Module = fx.Provide(
	NewArticleService, NewArticleRepo)

func NewArticleService(repo repositories.ArticleRepository) services.ArticleServiceInterface {
	return services.NewArticleService(repo)
}

func NewArticleRepo(db *gorm.DB) repositories.ArticleRepository {
	return repositories.NewArticleRepository(db)
}
