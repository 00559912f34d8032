package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zylox-agency/dashboard-backend/internal/auth"
	"github.com/zylox-agency/dashboard-backend/internal/auth/session"
)

// WithSession resolves the session cookie and, when valid, stores the user
// id in the Gin context. Requests without a session pass through; pair with
// RequireUser to gate a route group.
func WithSession(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		userID, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, session.ErrNoSession) {
				// Session backend failure: fail closed but loudly.
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.Next()
			return
		}

		c.Set(auth.CtxUserID, userID)
		c.Next()
	}
}

// RequireUser aborts with a bare 401 when no authenticated user is on the
// context.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := auth.CurrentUserID(c); !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}
