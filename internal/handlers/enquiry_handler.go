package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vortexsites/barbershop-backend/internal/backend"
	"github.com/vortexsites/barbershop-backend/internal/httperr"
	"github.com/vortexsites/barbershop-backend/internal/httpresp"
	"github.com/vortexsites/barbershop-backend/internal/models"
)

type EnquiryHandler struct {
	app backend.Facade
}

func NewEnquiryHandler(app backend.Facade) *EnquiryHandler {
	return &EnquiryHandler{app: app}
}

type SubmitEnquiryRequest struct {
	Name    string `json:"customer_name" binding:"required"`
	Phone   string `json:"customer_phone"`
	Email   string `json:"customer_email"`
	Service string `json:"service_interested"`
	Message string `json:"message"`
}

type UpdateEnquiryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Submit is the anonymous contact form. This is the one facade write whose
// failure must reach the caller, so the error is not swallowed here either.
func (h *EnquiryHandler) Submit(c *gin.Context) {
	var req SubmitEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid enquiry payload.")
		return
	}

	enquiry := &models.Enquiry{
		CustomerName:      req.Name,
		CustomerPhone:     req.Phone,
		CustomerEmail:     req.Email,
		ServiceInterested: req.Service,
		Message:           req.Message,
	}

	if err := h.app.SubmitEnquiry(c.Request.Context(), enquiry); err != nil {
		httperr.Internal(c, "enquiry_failed", "Could not submit your enquiry, please try again.")
		return
	}

	c.JSON(http.StatusCreated, enquiry)
}

// List backs the admin dashboard. An empty list may mean either no data or
// a failed fetch; the facade hides the difference.
func (h *EnquiryHandler) List(c *gin.Context) {
	httpresp.List(c, h.app.GetEnquiries(c.Request.Context()))
}

func (h *EnquiryHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_enquiry_id", "Invalid enquiry id.")
		return
	}

	var req UpdateEnquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	if !models.IsValidEnquiryStatus(req.Status) {
		httperr.BadRequest(c, "invalid_status", "Unknown enquiry status.")
		return
	}

	if err := h.app.UpdateEnquiryStatus(c.Request.Context(), uint(id), req.Status); err != nil {
		httperr.Internal(c, "status_update_failed", "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}
