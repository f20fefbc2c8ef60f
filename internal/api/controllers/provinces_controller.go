package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autoescuelas/internal/services"
	"autoescuelas/pkg/utils"
)

type ProvincesController struct {
	provinceService services.ProvinceServiceInterface
}

func NewProvincesController(provinceService services.ProvinceServiceInterface) *ProvincesController {
	return &ProvincesController{
		provinceService: provinceService,
	}
}

// GetProvinces godoc
// @Summary List provinces
// @Description Fetch all active provinces, sorted by rank
// @Tags Provinces
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/provinces [get]
func (p *ProvincesController) GetProvinces(c *gin.Context) {
	provinces, err := p.provinceService.ListProvinces(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "provinces": provinces})
}
