package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	httpapi "github.com/zylox-agency/dashboard-backend/internal/api/http"
	"github.com/zylox-agency/dashboard-backend/internal/auth"
	"github.com/zylox-agency/dashboard-backend/internal/dashboard/domain"
)

const defaultActivityLimit = 10

// pathID parses the :id path parameter. An unparsable id behaves like an
// absent record.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.store.GetAllProjects(c.Request.Context())
	if err != nil {
		httpapi.Error(c, http.StatusInternalServerError, "Error fetching projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *Handler) getProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httpapi.Error(c, http.StatusNotFound, "Project not found")
		return
	}

	project, err := h.store.GetProject(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httpapi.Error(c, http.StatusNotFound, "Project not found")
			return
		}
		httpapi.Error(c, http.StatusInternalServerError, "Error fetching project")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) createProject(c *gin.Context) {
	var req createProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.ValidationError(c, http.StatusBadRequest, "Invalid project data", err)
		return
	}

	status := req.Status
	if status == "" {
		status = domain.StatusPlanning
	}
	progress := 0
	if req.Progress != nil {
		progress = *req.Progress
	}

	project, err := h.store.CreateProject(c.Request.Context(), domain.InsertProject{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Progress:    progress,
		DueDate:     req.DueDate,
		CreatedBy:   req.CreatedBy,
		Tags:        req.Tags,
	})
	if err != nil {
		httpapi.Error(c, http.StatusInternalServerError, "Error creating project")
		return
	}

	actorID, _ := auth.CurrentUserID(c)
	_, err = h.store.AddActivity(c.Request.Context(), domain.InsertActivity{
		Title:       "New Project",
		Description: fmt.Sprintf("%s project was created", project.Title),
		Type:        "project_created",
		UserID:      &actorID,
		ProjectID:   &project.ID,
	})
	if err != nil {
		httpapi.Error(c, http.StatusInternalServerError, "Error creating project")
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (h *Handler) updateProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httpapi.Error(c, http.StatusNotFound, "Project not found")
		return
	}

	if _, err := h.store.GetProject(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httpapi.Error(c, http.StatusNotFound, "Project not found")
			return
		}
		httpapi.Error(c, http.StatusInternalServerError, "Error updating project")
		return
	}

	var req updateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.ValidationError(c, http.StatusBadRequest, "Invalid project data", err)
		return
	}

	project, err := h.store.UpdateProject(c.Request.Context(), id, domain.ProjectUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Progress:    req.Progress,
		DueDate:     req.DueDate,
		CreatedBy:   req.CreatedBy,
		Tags:        req.Tags,
	})
	if err != nil {
		httpapi.Error(c, http.StatusInternalServerError, "Error updating project")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) deleteProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httpapi.Error(c, http.StatusNotFound, "Project not found")
		return
	}

	removed, err := h.store.DeleteProject(c.Request.Context(), id)
	if err != nil {
		httpapi.Error(c, http.StatusInternalServerError, "Error deleting project")
		return
	}
	if !removed {
		httpapi.Error(c, http.StatusNotFound, "Project not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) createAssignment(c *gin.Context) {
	var req createAssignmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.ValidationError(c, http.StatusBadRequest, "Invalid assignment data", err)
		return
	}

	assignment, err := h.store.AssignUserToProject(c.Request.Context(), domain.InsertProjectAssignment{
		ProjectID: req.ProjectID,
		UserID:    req.UserID,
	})
	if err != nil {
		httpapi.Error(c, http.StatusInternalServerError, "Error creating assignment")
		return
	}

	// The assignment is recorded regardless; the activity only when both
	// sides resolve (silent partial success).
	user, userOK, err := h.resolveUser(c.Request.Context(), req.UserID)
	if err != nil {
		httpapi.Error(c, http.StatusInternalServerError, "Error creating assignment")
		return
	}
	project, projectOK, err := h.resolveProject(c.Request.Context(), req.ProjectID)
	if err != nil {
		httpapi.Error(c, http.StatusInternalServerError, "Error creating assignment")
		return
	}

	if userOK && projectOK {
		actorID, _ := auth.CurrentUserID(c)
		_, err = h.store.AddActivity(c.Request.Context(), domain.InsertActivity{
			Title:       "Team Member Assigned",
			Description: fmt.Sprintf("%s was assigned to %s", user.Name, project.Title),
			Type:        "user_assigned",
			UserID:      &actorID,
			ProjectID:   &project.ID,
		})
		if err != nil {
			httpapi.Error(c, http.StatusInternalServerError, "Error creating assignment")
			return
		}
	}

	c.JSON(http.StatusCreated, assignment)
}

func (h *Handler) removeAssignment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httpapi.Error(c, http.StatusNotFound, "Assignment not found")
		return
	}

	removed, err := h.store.RemoveAssignment(c.Request.Context(), id)
	if err != nil {
		httpapi.Error(c, http.StatusInternalServerError, "Error removing assignment")
		return
	}
	if !removed {
		httpapi.Error(c, http.StatusNotFound, "Assignment not found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listProjectAssignments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httpapi.Error(c, http.StatusNotFound, "Project not found")
		return
	}

	assignments, err := h.store.GetProjectAssignments(c.Request.Context(), id)
	if err != nil {
		httpapi.Error(c, http.StatusInternalServerError, "Error fetching project assignments")
		return
	}

	out := make([]assignmentWithUser, 0, len(assignments))
	for _, a := range assignments {
		user, _, err := h.resolveUser(c.Request.Context(), a.UserID)
		if err != nil {
			httpapi.Error(c, http.StatusInternalServerError, "Error fetching project assignments")
			return
		}
		out = append(out, assignmentWithUser{ProjectAssignment: a, User: user})
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) listUserAssignments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httpapi.Error(c, http.StatusNotFound, "User not found")
		return
	}

	assignments, err := h.store.GetUserAssignments(c.Request.Context(), id)
	if err != nil {
		httpapi.Error(c, http.StatusInternalServerError, "Error fetching user assignments")
		return
	}

	out := make([]assignmentWithProject, 0, len(assignments))
	for _, a := range assignments {
		project, _, err := h.resolveProject(c.Request.Context(), a.ProjectID)
		if err != nil {
			httpapi.Error(c, http.StatusInternalServerError, "Error fetching user assignments")
			return
		}
		out = append(out, assignmentWithProject{ProjectAssignment: a, Project: project})
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) listActivities(c *gin.Context) {
	limit := defaultActivityLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	activities, err := h.store.GetRecentActivities(c.Request.Context(), limit)
	if err != nil {
		httpapi.Error(c, http.StatusInternalServerError, "Error fetching activities")
		return
	}

	out := make([]enrichedActivity, 0, len(activities))
	for _, a := range activities {
		e := enrichedActivity{Activity: a}
		if a.UserID != nil {
			user, ok, err := h.resolveUser(c.Request.Context(), *a.UserID)
			if err != nil {
				httpapi.Error(c, http.StatusInternalServerError, "Error fetching activities")
				return
			}
			if ok {
				e.User = &domain.UserRef{ID: user.ID, Name: user.Name, Avatar: user.Avatar}
			}
		}
		if a.ProjectID != nil {
			project, ok, err := h.resolveProject(c.Request.Context(), *a.ProjectID)
			if err != nil {
				httpapi.Error(c, http.StatusInternalServerError, "Error fetching activities")
				return
			}
			if ok {
				e.Project = &domain.ProjectRef{ID: project.ID, Title: project.Title}
			}
		}
		out = append(out, e)
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) listSocialMediaStats(c *gin.Context) {
	stats, err := h.store.GetSocialMediaStats(c.Request.Context())
	if err != nil {
		httpapi.Error(c, http.StatusInternalServerError, "Error fetching social media stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) listTeamPerformance(c *gin.Context) {
	performance, err := h.store.GetTeamPerformance(c.Request.Context())
	if err != nil {
		httpapi.Error(c, http.StatusInternalServerError, "Error fetching team performance data")
		return
	}
	c.JSON(http.StatusOK, performance)
}

func (h *Handler) listUsers(c *gin.Context) {
	// Password never reaches the wire: the field is tagged json:"-".
	users, err := h.store.GetAllUsers(c.Request.Context())
	if err != nil {
		httpapi.Error(c, http.StatusInternalServerError, "Error fetching users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// resolveUser is the join helper for enrichment embeds: (record, found) with
// unexpected store failures reported separately.
func (h *Handler) resolveUser(ctx context.Context, id int) (*domain.User, bool, error) {
	user, err := h.store.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return user, true, nil
}

func (h *Handler) resolveProject(ctx context.Context, id int) (*domain.Project, bool, error) {
	project, err := h.store.GetProject(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return project, true, nil
}
