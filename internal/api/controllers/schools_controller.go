package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"autoescuelas/internal/models/request_models"
	"autoescuelas/internal/services"
	"autoescuelas/pkg/utils"
)

type SchoolsController struct {
	schoolService services.SchoolServiceInterface
}

func NewSchoolsController(schoolService services.SchoolServiceInterface) *SchoolsController {
	return &SchoolsController{
		schoolService: schoolService,
	}
}

// GetSchoolBySlug godoc
// @Summary School detail
// @Description School with its city, province, active courses and latest reviews
// @Tags Schools
// @Produce json
// @Param slug path string true "School slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/schools/{slug} [get]
func (s *SchoolsController) GetSchoolBySlug(c *gin.Context) {
	school, err := s.schoolService.GetSchoolBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "school": school})
}

// ListSchools is the admin listing; it includes inactive relations.
func (s *SchoolsController) ListSchools(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}

	list, err := s.schoolService.ListSchools(c.Request.Context(), page)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (s *SchoolsController) CreateSchool(c *gin.Context) {
	var req request_models.CreateSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Datos de autoescuela inválidos")
		return
	}

	school, err := s.schoolService.CreateSchool(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "school": school})
}

func (s *SchoolsController) UpdateSchool(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ID inválido")
		return
	}

	var req request_models.UpdateSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Datos de autoescuela inválidos")
		return
	}

	school, err := s.schoolService.UpdateSchool(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "school": school})
}

func (s *SchoolsController) DeleteSchool(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := s.schoolService.DeleteSchool(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func pageParam(c *gin.Context) (int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Número de página inválido")
		return 0, false
	}
	return page, true
}
