package booking

import (
	"context"

	"github.com/vortexsites/barbershop-backend/internal/dto"
	"github.com/vortexsites/barbershop-backend/internal/models"
)

type Repository interface {
	// -------- Users --------
	CreateUser(
		ctx context.Context,
		user *models.User,
	) error

	GetUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	// -------- Barbers --------
	CreateBarber(
		ctx context.Context,
		barber *models.Barber,
	) error

	ListBarbers(
		ctx context.Context,
	) ([]dto.BarberListDTO, error)

	// -------- Appointments --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]dto.AppointmentListDTO, error)

	// -------- Uploads --------
	CreateImageUpload(
		ctx context.Context,
		upload *models.ImageUpload,
	) error
}
