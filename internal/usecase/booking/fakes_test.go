package booking

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vortexsites/barbershop-backend/internal/dto"
	"github.com/vortexsites/barbershop-backend/internal/models"
)

// fakeRepo mimics the store, including the two unique constraints: user
// email and the (barber, time) appointment slot.
type fakeRepo struct {
	users        []models.User
	barbers      []models.Barber
	appointments []models.Appointment
	uploads      []models.ImageUpload

	nextID uint
}

func (r *fakeRepo) id() uint {
	r.nextID++
	return r.nextID
}

func (r *fakeRepo) CreateUser(ctx context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = r.id()
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) CreateBarber(ctx context.Context, barber *models.Barber) error {
	barber.ID = r.id()
	r.barbers = append(r.barbers, *barber)
	return nil
}

func (r *fakeRepo) ListBarbers(ctx context.Context) ([]dto.BarberListDTO, error) {
	var out []dto.BarberListDTO
	for _, b := range r.barbers {
		out = append(out, dto.BarberListDTO{
			ID:             b.ID,
			Name:           r.userName(b.UserID),
			Specialization: b.Specialization,
			Rating:         b.Rating,
		})
	}
	return out, nil
}

func (r *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	for _, existing := range r.appointments {
		if existing.BarberID == ap.BarberID && existing.AppointmentTime.Equal(ap.AppointmentTime) {
			return gorm.ErrDuplicatedKey
		}
	}
	ap.ID = r.id()
	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *fakeRepo) ListAppointmentsForCustomer(
	ctx context.Context,
	customerID uint,
) ([]dto.AppointmentListDTO, error) {
	var out []dto.AppointmentListDTO
	for _, ap := range r.appointments {
		if ap.CustomerID != customerID {
			continue
		}
		out = append(out, dto.AppointmentListDTO{
			ID:              ap.ID,
			BarberID:        ap.BarberID,
			BarberName:      r.barberName(ap.BarberID),
			AppointmentTime: ap.AppointmentTime,
			ServiceType:     ap.ServiceType,
			Notes:           ap.Notes,
		})
	}
	return out, nil
}

func (r *fakeRepo) CreateImageUpload(ctx context.Context, upload *models.ImageUpload) error {
	upload.ID = r.id()
	r.uploads = append(r.uploads, *upload)
	return nil
}

func (r *fakeRepo) userName(userID uint) string {
	for _, u := range r.users {
		if u.ID == userID {
			return u.Name
		}
	}
	return fmt.Sprintf("user-%d", userID)
}

func (r *fakeRepo) barberName(barberID uint) string {
	for _, b := range r.barbers {
		if b.ID == barberID {
			return r.userName(b.UserID)
		}
	}
	return fmt.Sprintf("barber-%d", barberID)
}

func slotAt(hour int) time.Time {
	return time.Date(2026, time.September, 15, hour, 0, 0, 0, time.UTC)
}
