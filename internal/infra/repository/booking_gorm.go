package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/vortexsites/barbershop-backend/internal/domain/booking"
	"github.com/vortexsites/barbershop-backend/internal/dto"
	"github.com/vortexsites/barbershop-backend/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *BookingGormRepository) CreateUser(
	ctx context.Context,
	user *models.User,
) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *BookingGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Barbers
// --------------------------------------------------

func (r *BookingGormRepository) CreateBarber(
	ctx context.Context,
	barber *models.Barber,
) error {
	return r.db.WithContext(ctx).Create(barber).Error
}

func (r *BookingGormRepository) ListBarbers(
	ctx context.Context,
) ([]dto.BarberListDTO, error) {

	var barbers []dto.BarberListDTO
	err := r.db.WithContext(ctx).
		Model(&models.Barber{}).
		Select("barbers.id, users.name, barbers.specialization, barbers.rating").
		Joins("JOIN users ON users.id = barbers.user_id").
		Scan(&barbers).Error

	if err != nil {
		return nil, err
	}
	return barbers, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) ListAppointmentsForCustomer(
	ctx context.Context,
	customerID uint,
) ([]dto.AppointmentListDTO, error) {

	var apps []dto.AppointmentListDTO
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select(`appointments.id, appointments.barber_id,
			appointments.appointment_time, appointments.service_type,
			appointments.notes, users.name AS barber_name`).
		Joins("JOIN barbers ON barbers.id = appointments.barber_id").
		Joins("JOIN users ON users.id = barbers.user_id").
		Where("appointments.customer_id = ?", customerID).
		Order("appointments.appointment_time ASC").
		Scan(&apps).Error

	if err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Uploads
// --------------------------------------------------

func (r *BookingGormRepository) CreateImageUpload(
	ctx context.Context,
	upload *models.ImageUpload,
) error {
	return r.db.WithContext(ctx).Create(upload).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
