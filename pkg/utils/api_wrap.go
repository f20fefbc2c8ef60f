package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"autoescuelas/internal/infra/logger"
)

// ErrorResponse is the error body every endpoint returns.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Success: false, Error: message})
}

// HandleServiceError maps service sentinel errors onto HTTP statuses.
// Collaborator failures stay generic; details go to the log only.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSchoolNotFound):
		RespondError(c, http.StatusNotFound, "Autoescuela no encontrada")
	case errors.Is(err, ErrArticleNotFound):
		RespondError(c, http.StatusNotFound, "Artículo no encontrado")
	case errors.Is(err, ErrCityNotFound):
		RespondError(c, http.StatusBadRequest, "Ciudad no encontrada")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, "El email ya está registrado")
	case errors.Is(err, ErrFileMissing):
		RespondError(c, http.StatusBadRequest, "No se envió ningún archivo")
	case errors.Is(err, ErrFileTooLarge):
		RespondError(c, http.StatusBadRequest, "El archivo supera el tamaño máximo de 5 MB")
	case errors.Is(err, ErrUnsupportedFile):
		RespondError(c, http.StatusBadRequest, "Tipo de archivo no permitido")
	case errors.Is(err, ErrSearchError):
		RespondError(c, http.StatusInternalServerError, "Error al realizar la búsqueda")
	case errors.Is(err, ErrUploadError):
		RespondError(c, http.StatusInternalServerError, "Error al subir la imagen")
	case errors.Is(err, ErrDatabaseError):
		RespondError(c, http.StatusInternalServerError, "Error interno del servidor")
	default:
		logger.Log.WithError(err).Error("Unknown service error")
		RespondError(c, http.StatusInternalServerError, "Error interno del servidor")
	}
}
