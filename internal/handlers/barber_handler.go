package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vortexsites/barbershop-backend/internal/httperr"
	"github.com/vortexsites/barbershop-backend/internal/httpresp"
	ucbooking "github.com/vortexsites/barbershop-backend/internal/usecase/booking"
)

type BarberHandler struct {
	listUC *ucbooking.ListBarbers
}

func NewBarberHandler(listUC *ucbooking.ListBarbers) *BarberHandler {
	return &BarberHandler{listUC: listUC}
}

func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Server error")
		return
	}

	httpresp.List(c, barbers)
}
