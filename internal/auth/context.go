package auth

import "github.com/gin-gonic/gin"

const (
	// CtxUserID is the gin context key the session middleware fills in.
	CtxUserID = "user_id"

	// SessionCookie is the cookie carrying the session token.
	SessionCookie = "dashboard_session"
)

// CurrentUserID extracts the authenticated user's id from the Gin context.
// ok is false when the request carries no valid session.
func CurrentUserID(c *gin.Context) (int, bool) {
	v, exists := c.Get(CtxUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}
