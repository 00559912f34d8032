package store

import (
	"context"

	"github.com/zylox-agency/dashboard-backend/internal/dashboard/domain"
)

// Storage is the repository contract the HTTP layer talks to. Handlers never
// reach a collection directly.
//
// Lookup methods return domain.ErrNotFound when the id is absent. Creation
// never enforces uniqueness or referential integrity; callers pre-check what
// they care about (register checks the username, the assignment route checks
// both sides before recording its activity).
type Storage interface {
	// Users
	GetUser(ctx context.Context, id int) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, u domain.InsertUser) (*domain.User, error)
	GetAllUsers(ctx context.Context) ([]domain.User, error)

	// Projects
	GetProject(ctx context.Context, id int) (*domain.Project, error)
	GetAllProjects(ctx context.Context) ([]domain.Project, error)
	GetProjectsByCreator(ctx context.Context, userID int) ([]domain.Project, error)
	CreateProject(ctx context.Context, p domain.InsertProject) (*domain.Project, error)
	UpdateProject(ctx context.Context, id int, upd domain.ProjectUpdate) (*domain.Project, error)
	DeleteProject(ctx context.Context, id int) (bool, error)

	// Project assignments
	AssignUserToProject(ctx context.Context, a domain.InsertProjectAssignment) (*domain.ProjectAssignment, error)
	GetProjectAssignments(ctx context.Context, projectID int) ([]domain.ProjectAssignment, error)
	GetUserAssignments(ctx context.Context, userID int) ([]domain.ProjectAssignment, error)
	RemoveAssignment(ctx context.Context, id int) (bool, error)

	// Activities (append-only)
	AddActivity(ctx context.Context, a domain.InsertActivity) (*domain.Activity, error)
	GetRecentActivities(ctx context.Context, limit int) ([]domain.Activity, error)

	// Social media stats (append-only)
	GetSocialMediaStats(ctx context.Context) ([]domain.SocialMediaStat, error)
	AddSocialMediaStat(ctx context.Context, s domain.InsertSocialMediaStat) (*domain.SocialMediaStat, error)

	// Team performance (append-only)
	GetTeamPerformance(ctx context.Context) ([]domain.TeamPerformance, error)
	AddTeamPerformance(ctx context.Context, p domain.InsertTeamPerformance) (*domain.TeamPerformance, error)

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
