package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autoescuelas/internal/models/request_models"
	"autoescuelas/internal/services"
	"autoescuelas/pkg/utils"
)

type UsersController struct {
	userService services.UserServiceInterface
}

func NewUsersController(userService services.UserServiceInterface) *UsersController {
	return &UsersController{
		userService: userService,
	}
}

// Register godoc
// @Summary Register an interested user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Registration payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/register [post]
func (u *UsersController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Nombre y email son requeridos")
		return
	}

	user, err := u.userService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// ListUsers is the admin view of registered leads.
func (u *UsersController) ListUsers(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}

	list, err := u.userService.ListUsers(c.Request.Context(), page)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
