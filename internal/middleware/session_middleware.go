package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "cart_session"
	// Guest carts live for 30 days, matching the cart storage TTL.
	sessionMaxAge = 30 * 24 * 60 * 60
)

// SessionMiddleware gives every visitor a stable session id cookie and
// exposes it as session_id on the context. Guest carts key on it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, sessionID, sessionMaxAge, "/", "", false, true)
		}

		c.Set("session_id", sessionID)
		c.Next()
	}
}
