package booking

import (
	"context"
	"testing"

	"github.com/vortexsites/barbershop-backend/internal/audit"
	domain "github.com/vortexsites/barbershop-backend/internal/domain/booking"
	"github.com/vortexsites/barbershop-backend/internal/httperr"
	"github.com/vortexsites/barbershop-backend/internal/models"
)

func TestCreateAppointmentSameSlotSucceedsExactlyOnce(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewCreateAppointment(repo, audit.NewNopDispatcher())
	ctx := context.Background()

	slot := slotAt(10)

	first, err := uc.Execute(ctx, CreateAppointmentInput{
		CustomerID:      1,
		BarberID:        2,
		AppointmentTime: slot,
		ServiceType:     "haircut",
	})
	if err != nil {
		t.Fatalf("first booking err = %v", err)
	}
	if first.ID == 0 {
		t.Fatal("first booking got no id")
	}

	_, err = uc.Execute(ctx, CreateAppointmentInput{
		CustomerID:      3,
		BarberID:        2,
		AppointmentTime: slot,
		ServiceType:     "beard",
	})
	if !httperr.IsBusiness(err, domain.CodeSlotTaken) {
		t.Fatalf("second booking err = %v, want %s", err, domain.CodeSlotTaken)
	}
	if len(repo.appointments) != 1 {
		t.Fatalf("appointments = %d, want exactly one", len(repo.appointments))
	}
}

func TestCreateAppointmentDifferentBarberSameTimeIsFine(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewCreateAppointment(repo, audit.NewNopDispatcher())
	ctx := context.Background()

	slot := slotAt(11)

	if _, err := uc.Execute(ctx, CreateAppointmentInput{CustomerID: 1, BarberID: 2, AppointmentTime: slot}); err != nil {
		t.Fatalf("booking err = %v", err)
	}
	if _, err := uc.Execute(ctx, CreateAppointmentInput{CustomerID: 1, BarberID: 9, AppointmentTime: slot}); err != nil {
		t.Fatalf("booking with another barber err = %v", err)
	}
	if len(repo.appointments) != 2 {
		t.Fatalf("appointments = %d, want 2", len(repo.appointments))
	}
}

func TestListCustomerAppointmentsCarriesBarberName(t *testing.T) {
	repo := &fakeRepo{}
	ctx := context.Background()

	barberUser := seedUser(t, repo, "joe@x.com", "pw", models.RoleBarber)
	repo.users[len(repo.users)-1].Name = "Joe"
	if err := repo.CreateBarber(ctx, &models.Barber{UserID: barberUser.ID}); err != nil {
		t.Fatal(err)
	}
	barberID := repo.barbers[0].ID

	createUC := NewCreateAppointment(repo, audit.NewNopDispatcher())
	if _, err := createUC.Execute(ctx, CreateAppointmentInput{
		CustomerID:      42,
		BarberID:        barberID,
		AppointmentTime: slotAt(9),
		ServiceType:     "haircut",
		Notes:           "short on the sides",
	}); err != nil {
		t.Fatalf("booking err = %v", err)
	}

	listUC := NewListCustomerAppointments(repo)
	apps, err := listUC.Execute(ctx, 42)
	if err != nil {
		t.Fatalf("list err = %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("appointments = %d, want 1", len(apps))
	}
	if apps[0].BarberName != "Joe" {
		t.Fatalf("BarberName = %q, want Joe", apps[0].BarberName)
	}
	if apps[0].Notes != "short on the sides" {
		t.Fatalf("Notes = %q, not intact", apps[0].Notes)
	}
}
