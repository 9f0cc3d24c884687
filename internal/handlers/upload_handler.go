package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/vortexsites/barbershop-backend/internal/domain/booking"
	"github.com/vortexsites/barbershop-backend/internal/httperr"
	"github.com/vortexsites/barbershop-backend/internal/middleware"
	ucbooking "github.com/vortexsites/barbershop-backend/internal/usecase/booking"
)

type UploadHandler struct {
	uploadUC *ucbooking.UploadAttachment
}

func NewUploadHandler(uploadUC *ucbooking.UploadAttachment) *UploadHandler {
	return &UploadHandler{uploadUC: uploadUC}
}

// Upload accepts a multipart form with field "image" plus optional
// appointment_id and image_type values.
func (h *UploadHandler) Upload(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, domain.CodeNoFile, "No image uploaded")
		return
	}

	var appointmentID *uint
	if raw := c.PostForm("appointment_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
			return
		}
		v := uint(id)
		appointmentID = &v
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_upload", "Server error")
		return
	}
	defer file.Close()

	upload, err := h.uploadUC.Execute(c.Request.Context(), ucbooking.UploadAttachmentInput{
		UserID:        userID,
		AppointmentID: appointmentID,
		ImageType:     c.PostForm("image_type"),
		Filename:      fileHeader.Filename,
		Content:       file,
	})
	if err != nil {
		if httperr.IsBusiness(err, domain.CodeInvalidImage) {
			httperr.BadRequest(c, domain.CodeInvalidImage, "Uploaded file is not a valid image.")
			return
		}
		httperr.Internal(c, "failed_to_store_upload", "Server error")
		return
	}

	c.JSON(http.StatusCreated, upload)
}
