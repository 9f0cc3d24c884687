package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vortexsites/barbershop-backend/internal/backend"
)

const (
	ContextSession     = "session"
	SessionTokenHeader = "X-Session-Token"
)

// SessionMiddleware guards the admin dashboard surface. It asks the facade
// for the session; GetSession never errors, absence means unauthenticated.
func SessionMiddleware(app backend.Facade) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(SessionTokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_session_token"})
			return
		}

		sess := app.GetSession(c.Request.Context(), token)
		if sess == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_session"})
			return
		}

		c.Set(ContextSession, sess)
		c.Next()
	}
}
