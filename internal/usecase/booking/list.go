package booking

import (
	"context"

	domain "github.com/vortexsites/barbershop-backend/internal/domain/booking"
	"github.com/vortexsites/barbershop-backend/internal/dto"
)

type ListCustomerAppointments struct {
	repo domain.Repository
}

func NewListCustomerAppointments(repo domain.Repository) *ListCustomerAppointments {
	return &ListCustomerAppointments{repo: repo}
}

func (uc *ListCustomerAppointments) Execute(
	ctx context.Context,
	customerID uint,
) ([]dto.AppointmentListDTO, error) {
	return uc.repo.ListAppointmentsForCustomer(ctx, customerID)
}

type ListBarbers struct {
	repo domain.Repository
}

func NewListBarbers(repo domain.Repository) *ListBarbers {
	return &ListBarbers{repo: repo}
}

func (uc *ListBarbers) Execute(ctx context.Context) ([]dto.BarberListDTO, error) {
	return uc.repo.ListBarbers(ctx)
}
