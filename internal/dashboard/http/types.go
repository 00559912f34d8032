package http

import (
	"github.com/zylox-agency/dashboard-backend/internal/dashboard/domain"
	"github.com/zylox-agency/dashboard-backend/internal/dashboard/store"
)

// Handler bundles the dependencies for the dashboard API endpoints.
type Handler struct {
	store store.Storage
}

func New(st store.Storage) *Handler {
	return &Handler{store: st}
}

// createProjectReq mirrors the project insert schema: status and progress
// carry defaults, tags are optional, everything else is required.
type createProjectReq struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Status      string   `json:"status"`
	Progress    *int     `json:"progress"`
	DueDate     string   `json:"dueDate" binding:"required"`
	CreatedBy   int      `json:"createdBy" binding:"required"`
	Tags        []string `json:"tags"`
}

// updateProjectReq is the partial-update body. Absent keys leave fields
// untouched; the updatable set is fixed to the insert fields.
type updateProjectReq struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Status      *string   `json:"status"`
	Progress    *int      `json:"progress"`
	DueDate     *string   `json:"dueDate"`
	CreatedBy   *int      `json:"createdBy"`
	Tags        *[]string `json:"tags"`
}

type createAssignmentReq struct {
	ProjectID int `json:"projectId" binding:"required"`
	UserID    int `json:"userId" binding:"required"`
}

// assignmentWithUser embeds the full user record for a project's assignment
// listing; user is null when the referenced id does not resolve.
type assignmentWithUser struct {
	domain.ProjectAssignment
	User *domain.User `json:"user"`
}

// assignmentWithProject embeds the project for a user's assignment listing.
type assignmentWithProject struct {
	domain.ProjectAssignment
	Project *domain.Project `json:"project"`
}

// enrichedActivity carries the reduced user/project projections; either is
// null when the id is absent or does not resolve.
type enrichedActivity struct {
	domain.Activity
	User    *domain.UserRef    `json:"user"`
	Project *domain.ProjectRef `json:"project"`
}
