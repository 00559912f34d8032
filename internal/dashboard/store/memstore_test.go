package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/zylox-agency/dashboard-backend/internal/dashboard/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func sampleProject() domain.InsertProject {
	return domain.InsertProject{
		Title:       "Website Redesign",
		Description: "Full redesign of the agency website",
		Status:      domain.StatusPlanning,
		Progress:    0,
		DueDate:     "2025-01-01",
		CreatedBy:   1,
		Tags:        []string{"web"},
	}
}

func TestCreateProjectAssignsMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	var lastID int
	for i := 0; i < 5; i++ {
		p, err := s.CreateProject(ctx, sampleProject())
		require.NoError(t, err)
		assert.Greater(t, p.ID, lastID)
		assert.False(t, p.CreatedAt.IsZero())
		lastID = p.ID

		got, err := s.GetProject(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	// Deleting does not free the id for reuse.
	removed, err := s.DeleteProject(ctx, lastID)
	require.NoError(t, err)
	require.True(t, removed)

	p, err := s.CreateProject(ctx, sampleProject())
	require.NoError(t, err)
	assert.Greater(t, p.ID, lastID)
}

func TestUpdateProject(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	t.Run("absent id", func(t *testing.T) {
		_, err := s.UpdateProject(ctx, 99, domain.ProjectUpdate{Title: strPtr("x")})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		all, err := s.GetAllProjects(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("merges only provided fields", func(t *testing.T) {
		created, err := s.CreateProject(ctx, sampleProject())
		require.NoError(t, err)

		updated, err := s.UpdateProject(ctx, created.ID, domain.ProjectUpdate{
			Status:   strPtr(domain.StatusInProgress),
			Progress: intPtr(40),
		})
		require.NoError(t, err)

		want := *created
		want.Status = domain.StatusInProgress
		want.Progress = 40
		assert.Equal(t, &want, updated)

		got, err := s.GetProject(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, &want, got)
	})
}

func TestGetProjectsByCreator(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	first := sampleProject()
	second := sampleProject()
	second.CreatedBy = 2

	_, err := s.CreateProject(ctx, first)
	require.NoError(t, err)
	_, err = s.CreateProject(ctx, second)
	require.NoError(t, err)
	_, err = s.CreateProject(ctx, first)
	require.NoError(t, err)

	mine, err := s.GetProjectsByCreator(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Less(t, mine[0].ID, mine[1].ID)

	none, err := s.GetProjectsByCreator(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteProjectIsIdempotentObservable(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	p, err := s.CreateProject(ctx, sampleProject())
	require.NoError(t, err)

	removed, err := s.DeleteProject(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	all, err := s.GetAllProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	removed, err = s.DeleteProject(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestGetRecentActivitiesOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	for _, title := range []string{"A1", "A2", "A3"} {
		_, err := s.AddActivity(ctx, domain.InsertActivity{
			Title:       title,
			Description: title + " happened",
			Type:        "project_created",
		})
		require.NoError(t, err)
	}

	recent, err := s.GetRecentActivities(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "A3", recent[0].Title)
	assert.Equal(t, "A2", recent[1].Title)

	all, err := s.GetRecentActivities(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAssignmentsQueriedByEitherSide(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	a1, err := s.AssignUserToProject(ctx, domain.InsertProjectAssignment{ProjectID: 1, UserID: 2})
	require.NoError(t, err)
	_, err = s.AssignUserToProject(ctx, domain.InsertProjectAssignment{ProjectID: 1, UserID: 3})
	require.NoError(t, err)
	// Duplicate links are allowed.
	_, err = s.AssignUserToProject(ctx, domain.InsertProjectAssignment{ProjectID: 1, UserID: 2})
	require.NoError(t, err)

	byProject, err := s.GetProjectAssignments(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byProject, 3)

	byUser, err := s.GetUserAssignments(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	removed, err := s.RemoveAssignment(ctx, a1.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.RemoveAssignment(ctx, a1.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestGetUserByUsername(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	created, err := s.CreateUser(ctx, domain.InsertUser{
		Username: "moeed",
		Password: "hash",
		Name:     "Moeed Mirza",
		Email:    "moeed@zylox.agency",
		Role:     "Admin",
	})
	require.NoError(t, err)

	got, err := s.GetUserByUsername(ctx, "moeed")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = s.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()
	require.NoError(t, Seed(ctx, s))

	perf, err := s.GetTeamPerformance(ctx)
	require.NoError(t, err)
	require.Len(t, perf, 3)
	assert.Equal(t, "Design Team", perf[0].Team)
	assert.Equal(t, 80, perf[0].Performance)
	assert.Equal(t, "Dev Team", perf[1].Team)
	assert.Equal(t, 70, perf[1].Performance)
	assert.Equal(t, "Marketing", perf[2].Team)
	assert.Equal(t, 90, perf[2].Performance)

	stats, err := s.GetSocialMediaStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 4)
	want := []domain.SocialMediaStat{
		{ID: 1, Platform: "Twitter", Followers: 5200, Engagement: 65, Growth: "+12.6%"},
		{ID: 2, Platform: "Instagram", Followers: 8500, Engagement: 82, Growth: "+23.4%"},
		{ID: 3, Platform: "Facebook", Followers: 3800, Engagement: 45, Growth: "+4.2%"},
		{ID: 4, Platform: "LinkedIn", Followers: 4100, Engagement: 58, Growth: "+15.7%"},
	}
	for i, w := range want {
		assert.Equal(t, w.ID, stats[i].ID)
		assert.Equal(t, w.Platform, stats[i].Platform)
		assert.Equal(t, w.Followers, stats[i].Followers)
		assert.Equal(t, w.Engagement, stats[i].Engagement)
		assert.Equal(t, w.Growth, stats[i].Growth)
	}

	users, err := s.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 5)
	assert.Equal(t, "moeed", users[0].Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].Password), []byte("secret")))

	// Seeding an already-populated store is a no-op.
	require.NoError(t, Seed(ctx, s))
	users, err = s.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 5)
}

func TestStoreHandsOutCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	created, err := s.CreateProject(ctx, sampleProject())
	require.NoError(t, err)

	created.Title = "mutated"

	got, err := s.GetProject(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Website Redesign", got.Title)
}
