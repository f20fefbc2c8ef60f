package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autoescuelas/internal/services"
	"autoescuelas/pkg/utils"
)

type SearchController struct {
	searchService services.SearchServiceInterface
}

func NewSearchController(searchService services.SearchServiceInterface) *SearchController {
	return &SearchController{
		searchService: searchService,
	}
}

// SearchSchools godoc
// @Summary Search driving schools
// @Tags Search
// @Produce json
// @Param q query string true "Query string"
// @Param province query string false "Province filter"
// @Param minRating query string false "Minimum rating"
// @Param maxPrice query string false "Maximum price"
// @Success 200 {object} response_models.SearchResult
// @Router /api/search/schools [get]
func (s *SearchController) SearchSchools(c *gin.Context) {
	filters := services.SchoolFilters{
		Province:  c.Query("province"),
		MinRating: c.Query("minRating"),
		MaxPrice:  c.Query("maxPrice"),
	}

	result, err := s.searchService.SearchSchools(c.Request.Context(), c.Query("q"), filters)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *SearchController) SearchCities(c *gin.Context) {
	result, err := s.searchService.SearchCities(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *SearchController) SearchProvinces(c *gin.Context) {
	result, err := s.searchService.SearchProvinces(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
