package booking

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/vortexsites/barbershop-backend/internal/audit"
	domain "github.com/vortexsites/barbershop-backend/internal/domain/booking"
	"github.com/vortexsites/barbershop-backend/internal/httperr"
	"github.com/vortexsites/barbershop-backend/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	Role           string
	Specialization string
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegister(repo domain.Repository, audit *audit.Dispatcher) *Register {
	return &Register{repo: repo, audit: audit}
}

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.User, error) {

	role := in.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if !models.IsValidRole(role) {
		return nil, httperr.ErrBusiness(domain.CodeInvalidRole)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         in.Name,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hashed),
		Role:         role,
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		if httperr.IsDuplicateKey(err) {
			return nil, httperr.ErrBusiness(domain.CodeEmailTaken)
		}
		return nil, err
	}

	// Barbers get their bookable profile together with the account.
	if role == models.RoleBarber {
		barber := &models.Barber{
			UserID:         user.ID,
			Specialization: in.Specialization,
		}
		if err := uc.repo.CreateBarber(ctx, barber); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}
