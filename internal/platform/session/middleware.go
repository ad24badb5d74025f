package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// CookieName is the only place a session token is read from.
	CookieName = "sessionId"

	// CookieMaxAge is the validity window set at issuance. It is enforced by the
	// client through the cookie expiry only.
	CookieMaxAge = 7 * 24 * time.Hour

	// ContextUserID is the gin.Context key holding the authenticated user id.
	ContextUserID = "userID"
)

// Authenticator resolves a session token into a user id.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// Required returns a Gin middleware that only lets requests with a valid
// session cookie through and stores the resolved user id in the context.
func Required(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		// A missing cookie is passed on as an empty token.
		token, _ := c.Cookie(CookieName)

		userID, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, ErrUnauthenticated) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
				return
			}
			slog.Error("session lookup failed", "error", err, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID returns the user id stored by Required.
func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// SetCookie writes the session cookie for token.
func SetCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(CookieMaxAge.Seconds()), "/", "", false, true)
}
