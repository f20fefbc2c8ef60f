package services

import (
	"context"

	"autoescuelas/internal/infra/logger"
	"autoescuelas/internal/models/db_models"
	"autoescuelas/internal/models/response_models"
	"autoescuelas/internal/repositories"
	"autoescuelas/pkg/utils"
)

const (
	maxRelatedArticles = 3
	blogPageSize       = 9
)

type ArticleServiceInterface interface {
	GetArticleBySlug(ctx context.Context, articleSlug string) (*response_models.ArticleResponse, []response_models.ArticleSummary, error)
	ListArticles(ctx context.Context, category string, page int) (*response_models.BlogListResponse, error)
}

type ArticleService struct {
	articleRepository repositories.ArticleRepository
}

func NewArticleService(articleRepository repositories.ArticleRepository) ArticleServiceInterface {
	return &ArticleService{
		articleRepository: articleRepository,
	}
}

func (a *ArticleService) GetArticleBySlug(ctx context.Context, articleSlug string) (*response_models.ArticleResponse, []response_models.ArticleSummary, error) {
	article, err := a.articleRepository.GetPublishedBySlug(ctx, articleSlug)
	if err != nil {
		logger.Log.WithError(err).Error("Error fetching article")
		return nil, nil, utils.ErrDatabaseError
	}
	if article == nil {
		return nil, nil, utils.ErrArticleNotFound
	}

	related, err := a.articleRepository.ListRelated(ctx, article.Category, article.Slug, maxRelatedArticles)
	if err != nil {
		logger.Log.WithError(err).Error("Error fetching related articles")
		return nil, nil, utils.ErrDatabaseError
	}

	response := &response_models.ArticleResponse{
		ID:          article.ID.String(),
		Title:       article.Title,
		Slug:        article.Slug,
		Category:    article.Category,
		Excerpt:     article.Excerpt,
		Body:        article.Body,
		Author:      article.Author,
		ReadingTime: article.ReadingTime,
		PublishedAt: article.PublishedAt,
	}

	summaries := make([]response_models.ArticleSummary, 0, len(related))
	for i := range related {
		summaries = append(summaries, articleSummary(&related[i]))
	}

	return response, summaries, nil
}

func (a *ArticleService) ListArticles(ctx context.Context, category string, page int) (*response_models.BlogListResponse, error) {
	articles, total, err := a.articleRepository.ListPublished(ctx, category, page, blogPageSize)
	if err != nil {
		logger.Log.WithError(err).Error("Error listing articles")
		return nil, utils.ErrDatabaseError
	}

	list := &response_models.BlogListResponse{
		Articles:   make([]response_models.ArticleSummary, 0, len(articles)),
		Page:       page,
		TotalPages: totalPages(total, blogPageSize),
	}
	for i := range articles {
		list.Articles = append(list.Articles, articleSummary(&articles[i]))
	}

	return list, nil
}

func articleSummary(article *db_models.BlogArticle) response_models.ArticleSummary {
	return response_models.ArticleSummary{
		ID:          article.ID.String(),
		Title:       article.Title,
		Slug:        article.Slug,
		Category:    article.Category,
		Excerpt:     article.Excerpt,
		Author:      article.Author,
		ReadingTime: article.ReadingTime,
		PublishedAt: article.PublishedAt,
	}
}
