package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/vortexsites/barbershop-backend/internal/domain/booking"
	"github.com/vortexsites/barbershop-backend/internal/httperr"
	ucbooking "github.com/vortexsites/barbershop-backend/internal/usecase/booking"
	"github.com/vortexsites/barbershop-backend/internal/validators"
)

type AuthHandler struct {
	registerUC *ucbooking.Register
	loginUC    *ucbooking.Login
}

func NewAuthHandler(registerUC *ucbooking.Register, loginUC *ucbooking.Login) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	Role           string `json:"role"`
	Specialization string `json:"specialization"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	user, err := h.registerUC.Execute(c.Request.Context(), ucbooking.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		Specialization: req.Specialization,
	})
	if err != nil {
		if httperr.IsBusiness(err, domain.CodeEmailTaken) {
			httperr.BadRequest(c, domain.CodeEmailTaken, "Email already exists")
			return
		}
		if httperr.IsBusiness(err, domain.CodeInvalidRole) {
			httperr.BadRequest(c, domain.CodeInvalidRole, "Unknown role")
			return
		}
		httperr.Internal(c, "registration_failed", "Server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	token, user, err := h.loginUC.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if httperr.IsBusiness(err, domain.CodeUserNotFound) {
			httperr.BadRequest(c, domain.CodeUserNotFound, "User not found")
			return
		}
		if httperr.IsBusiness(err, domain.CodeInvalidPassword) {
			httperr.Unauthorized(c, domain.CodeInvalidPassword, "Invalid password")
			return
		}
		httperr.Internal(c, "login_failed", "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":   user.ID,
			"name": user.Name,
			"role": user.Role,
		},
	})
}
