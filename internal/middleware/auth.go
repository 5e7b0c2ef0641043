package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yishak-cs/campus-meals/internal/models"
)

const sessionKey = "session"

// SessionValidator resolves a bearer token to a live session
type SessionValidator interface {
	Validate(token string) (*models.Session, error)
}

// RequireSession rejects requests without a valid "Bearer <token>" header and
// stores the session on the context for downstream handlers.
func RequireSession(v SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed authorization header"})
			return
		}

		session, err := v.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// BearerToken extracts the token from an Authorization header
func BearerToken(c *gin.Context) (string, bool) {
	parts := strings.Fields(c.GetHeader("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func SessionFrom(c *gin.Context) (*models.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	session, ok := v.(*models.Session)
	return session, ok && session != nil
}
