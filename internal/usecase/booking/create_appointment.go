package booking

import (
	"context"
	"time"

	"github.com/vortexsites/barbershop-backend/internal/audit"
	domain "github.com/vortexsites/barbershop-backend/internal/domain/booking"
	"github.com/vortexsites/barbershop-backend/internal/httperr"
	"github.com/vortexsites/barbershop-backend/internal/models"
)

type CreateAppointmentInput struct {
	CustomerID      uint
	BarberID        uint
	AppointmentTime time.Time
	ServiceType     string
	Notes           string
}

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{repo: repo, audit: audit}
}

// Execute inserts the booking directly. There is no overlap scan here: the
// store's unique index over (barber_id, appointment_time) serializes
// conflicting attempts, and a duplicate-key failure comes back as slot_taken.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	ap := &models.Appointment{
		CustomerID:      in.CustomerID,
		BarberID:        in.BarberID,
		AppointmentTime: in.AppointmentTime,
		ServiceType:     in.ServiceType,
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsDuplicateKey(err) {
			uc.audit.Dispatch(audit.Event{
				UserID: &in.CustomerID,
				Action: "appointment_conflict",
				Entity: "appointment",
				Metadata: map[string]any{
					"barber_id": in.BarberID,
					"time":      in.AppointmentTime,
				},
			})
			return nil, httperr.ErrBusiness(domain.CodeSlotTaken)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CustomerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
