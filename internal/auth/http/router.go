package http

import "github.com/gin-gonic/gin"

// Register attaches the auth routes. The group is expected to already run
// the session-resolving middleware so GET /user can see the current session.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/register", h.register)
	rg.POST("/login", h.login)
	rg.POST("/logout", h.logout)
	rg.GET("/user", h.currentUser)
}
