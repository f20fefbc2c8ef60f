package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autoescuelas/internal/services"
	"autoescuelas/pkg/utils"
)

type StatsController struct {
	statsService services.StatsServiceInterface
}

func NewStatsController(statsService services.StatsServiceInterface) *StatsController {
	return &StatsController{
		statsService: statsService,
	}
}

func (s *StatsController) GetStats(c *gin.Context) {
	stats, err := s.statsService.GetStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
