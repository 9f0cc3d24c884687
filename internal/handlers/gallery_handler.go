package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vortexsites/barbershop-backend/internal/backend"
	"github.com/vortexsites/barbershop-backend/internal/httperr"
	"github.com/vortexsites/barbershop-backend/internal/httpresp"
)

type GalleryHandler struct {
	app backend.Facade
}

func NewGalleryHandler(app backend.Facade) *GalleryHandler {
	return &GalleryHandler{app: app}
}

func (h *GalleryHandler) List(c *gin.Context) {
	httpresp.List(c, h.app.GetGalleryImages(c.Request.Context()))
}

func (h *GalleryHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "no_file", "No image uploaded")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_upload", "Server error")
		return
	}
	defer file.Close()

	img, err := h.app.UploadImage(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Could not upload the image.")
		return
	}

	c.JSON(http.StatusCreated, img)
}
