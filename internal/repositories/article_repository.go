package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"autoescuelas/internal/models/db_models"
)

type ArticleRepository interface {
	GetPublishedBySlug(ctx context.Context, slug string) (*db_models.BlogArticle, error)
	ListRelated(ctx context.Context, category, excludeSlug string, limit int) ([]db_models.BlogArticle, error)
	ListPublished(ctx context.Context, category string, page, pageSize int) ([]db_models.BlogArticle, int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (a *articleRepository) GetPublishedBySlug(ctx context.Context, slug string) (*db_models.BlogArticle, error) {
	var article db_models.BlogArticle
	err := a.db.WithContext(ctx).
		First(&article, "slug = ? AND published = ?", slug, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (a *articleRepository) ListRelated(ctx context.Context, category, excludeSlug string, limit int) ([]db_models.BlogArticle, error) {
	var articles []db_models.BlogArticle
	err := a.db.WithContext(ctx).
		Where("category = ? AND published = ? AND slug <> ?", category, true, excludeSlug).
		Order("published_at DESC").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

func (a *articleRepository) ListPublished(ctx context.Context, category string, page, pageSize int) ([]db_models.BlogArticle, int64, error) {
	query := a.db.WithContext(ctx).Model(&db_models.BlogArticle{}).Where("published = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []db_models.BlogArticle
	err := query.
		Order("published_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&articles).Error
	return articles, total, err
}
