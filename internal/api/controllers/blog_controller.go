package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autoescuelas/internal/services"
	"autoescuelas/pkg/utils"
)

type BlogController struct {
	articleService services.ArticleServiceInterface
}

func NewBlogController(articleService services.ArticleServiceInterface) *BlogController {
	return &BlogController{
		articleService: articleService,
	}
}

// GetArticleBySlug godoc
// @Summary Article detail
// @Description Published article with up to three related articles of the same category
// @Tags Blog
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/blog/{slug} [get]
func (b *BlogController) GetArticleBySlug(c *gin.Context) {
	article, related, err := b.articleService.GetArticleBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article, "relatedArticles": related})
}

func (b *BlogController) ListArticles(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}

	list, err := b.articleService.ListArticles(c.Request.Context(), c.Query("category"), page)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
