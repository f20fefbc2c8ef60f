package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autoescuelas/internal/services"
	"autoescuelas/pkg/utils"
)

type UploadController struct {
	uploadService services.UploadServiceInterface
}

func NewUploadController(uploadService services.UploadServiceInterface) *UploadController {
	return &UploadController{
		uploadService: uploadService,
	}
}

// Upload godoc
// @Summary Upload a school image
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file (jpeg/png/webp, max 5 MB)"
// @Param folder formData string false "Destination folder"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/upload [post]
func (u *UploadController) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		utils.HandleServiceError(c, utils.ErrFileMissing)
		return
	}

	file, err := header.Open()
	if err != nil {
		utils.HandleServiceError(c, utils.ErrUploadError)
		return
	}
	defer file.Close()

	folder := c.PostForm("folder")
	if folder == "" {
		folder = "autoescuelas"
	}

	result, err := u.uploadService.UploadImage(
		c.Request.Context(),
		file,
		header.Header.Get("Content-Type"),
		header.Size,
		folder,
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "url": result.URL, "publicId": result.PublicID})
}
