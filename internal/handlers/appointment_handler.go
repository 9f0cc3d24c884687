package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/vortexsites/barbershop-backend/internal/domain/booking"
	"github.com/vortexsites/barbershop-backend/internal/httperr"
	"github.com/vortexsites/barbershop-backend/internal/httpresp"
	"github.com/vortexsites/barbershop-backend/internal/middleware"
	ucbooking "github.com/vortexsites/barbershop-backend/internal/usecase/booking"
)

type AppointmentHandler struct {
	createUC *ucbooking.CreateAppointment
	listUC   *ucbooking.ListCustomerAppointments
}

func NewAppointmentHandler(
	createUC *ucbooking.CreateAppointment,
	listUC *ucbooking.ListCustomerAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		listUC:   listUC,
	}
}

type CreateAppointmentRequest struct {
	BarberID        uint      `json:"barber_id" binding:"required"`
	AppointmentTime time.Time `json:"appointment_time" binding:"required"`
	ServiceType     string    `json:"service_type"`
	Notes           string    `json:"notes"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucbooking.CreateAppointmentInput{
		CustomerID:      customerID,
		BarberID:        req.BarberID,
		AppointmentTime: req.AppointmentTime,
		ServiceType:     req.ServiceType,
		Notes:           req.Notes,
	})
	if err != nil {
		if httperr.IsBusiness(err, domain.CodeSlotTaken) {
			httperr.Conflict(c, domain.CodeSlotTaken, "Time slot already booked for this barber")
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Server error")
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func (h *AppointmentHandler) ListForCustomer(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_user_id", "Invalid user id.")
		return
	}

	apps, err := h.listUC.Execute(c.Request.Context(), uint(userID))
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Server error")
		return
	}

	httpresp.List(c, apps)
}
