package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"autoescuelas/internal/services"
	"autoescuelas/pkg/utils"
)

type CitiesController struct {
	cityService services.CityServiceInterface
}

func NewCitiesController(cityService services.CityServiceInterface) *CitiesController {
	return &CitiesController{
		cityService: cityService,
	}
}

// GetCities godoc
// @Summary List cities of a province
// @Tags Cities
// @Produce json
// @Param provinceId query string true "Province ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/cities [get]
func (ct *CitiesController) GetCities(c *gin.Context) {
	rawID := c.Query("provinceId")
	if rawID == "" {
		utils.RespondError(c, http.StatusBadRequest, "El parámetro provinceId es requerido")
		return
	}

	provinceID, err := uuid.Parse(rawID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "provinceId inválido")
		return
	}

	cities, err := ct.cityService.ListCitiesByProvince(c.Request.Context(), provinceID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "cities": cities})
}
