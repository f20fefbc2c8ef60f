package controllers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"autoescuelas/internal/infra/config"
	"autoescuelas/internal/models/request_models"
	"autoescuelas/pkg/middleware"
	"autoescuelas/pkg/utils"
)

const adminCookieMaxAge = 24 * 60 * 60

type AdminController struct {
	cfg *config.AppConfig
}

func NewAdminController(cfg *config.AppConfig) *AdminController {
	return &AdminController{cfg: cfg}
}

// Login sets the admin cookie the gate middleware checks on every
// /admin request.
func (a *AdminController) Login(c *gin.Context) {
	var req request_models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Usuario y contraseña son requeridos")
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.cfg.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(a.cfg.AdminPassword)) == 1
	if !userOK || !passOK {
		utils.RespondError(c, http.StatusUnauthorized, "Credenciales inválidas")
		return
	}

	value, err := json.Marshal(gin.H{"username": req.Username, "password": req.Password})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	secure := a.cfg.Environment == "production"
	c.SetCookie(middleware.AdminCookieName, string(value), adminCookieMaxAge, "/", "", secure, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (a *AdminController) Logout(c *gin.Context) {
	secure := a.cfg.Environment == "production"
	c.SetCookie(middleware.AdminCookieName, "", -1, "/", "", secure, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
