package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vortexsites/barbershop-backend/internal/backend"
	"github.com/vortexsites/barbershop-backend/internal/httperr"
	"github.com/vortexsites/barbershop-backend/internal/middleware"
)

type SessionHandler struct {
	app backend.Facade
}

func NewSessionHandler(app backend.Facade) *SessionHandler {
	return &SessionHandler{app: app}
}

type SessionLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *SessionHandler) Login(c *gin.Context) {
	var req SessionLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required.")
		return
	}

	sess, err := h.app.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// One generic answer regardless of which check failed.
		httperr.Unauthorized(c, "login_failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session": sess,
		"user": gin.H{
			"id":    sess.UserID,
			"email": sess.Email,
			"role":  sess.Role,
		},
	})
}

func (h *SessionHandler) Logout(c *gin.Context) {
	token := c.GetHeader(middleware.SessionTokenHeader)

	// Logout never fails from the caller's perspective.
	_ = h.app.Logout(c.Request.Context(), token)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *SessionHandler) Get(c *gin.Context) {
	token := c.GetHeader(middleware.SessionTokenHeader)

	sess := h.app.GetSession(c.Request.Context(), token)
	if sess == nil {
		c.JSON(http.StatusOK, gin.H{"session": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": sess})
}
