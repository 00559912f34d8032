package http

import "github.com/gin-gonic/gin"

// Register attaches the dashboard routes to an authenticated router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/projects", h.listProjects)
	rg.POST("/projects", h.createProject)
	rg.GET("/projects/:id", h.getProject)
	rg.PUT("/projects/:id", h.updateProject)
	rg.DELETE("/projects/:id", h.deleteProject)
	rg.GET("/projects/:id/assignments", h.listProjectAssignments)

	rg.POST("/assignments", h.createAssignment)
	rg.DELETE("/assignments/:id", h.removeAssignment)

	rg.GET("/activities", h.listActivities)
	rg.GET("/social-media-stats", h.listSocialMediaStats)
	rg.GET("/team-performance", h.listTeamPerformance)

	rg.GET("/users", h.listUsers)
	rg.GET("/users/:id/assignments", h.listUserAssignments)
}
