package booking

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	domain "github.com/vortexsites/barbershop-backend/internal/domain/booking"
	"github.com/vortexsites/barbershop-backend/internal/httperr"
	"github.com/vortexsites/barbershop-backend/internal/models"
)

const tokenTTL = time.Hour

type Login struct {
	repo   domain.Repository
	secret string
}

func NewLogin(repo domain.Repository, secret string) *Login {
	return &Login{repo: repo, secret: secret}
}

// Execute keeps the historical distinction between an unknown email and a
// wrong password. The facade's session login does not; changing either side
// changes observable behavior the dashboard relies on.
func (uc *Login) Execute(
	ctx context.Context,
	email string,
	password string,
) (string, *models.User, error) {

	email = strings.ToLower(strings.TrimSpace(email))

	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, httperr.ErrBusiness(domain.CodeUserNotFound)
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(password),
	); err != nil {
		return "", nil, httperr.ErrBusiness(domain.CodeInvalidPassword)
	}

	token, err := uc.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (uc *Login) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(tokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(uc.secret))
}
