package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/zylox-agency/dashboard-backend/internal/dashboard/domain"
)

// MemStore keeps all six collections in process memory behind a single
// RWMutex. Ids are monotonic per collection and never reused, so listing in
// ascending id order reproduces insertion order.
//
// Every method hands out copies; committed state only changes through the
// defined update operations.
type MemStore struct {
	mu sync.RWMutex

	users            map[int]domain.User
	projects         map[int]domain.Project
	assignments      map[int]domain.ProjectAssignment
	activities       map[int]domain.Activity
	socialMediaStats map[int]domain.SocialMediaStat
	teamPerformances map[int]domain.TeamPerformance

	userID        int
	projectID     int
	assignmentID  int
	activityID    int
	socialStatID  int
	performanceID int
}

var _ Storage = (*MemStore)(nil)

// NewMemStore returns an empty store. Use Seed to load the sample dashboard
// rows.
func NewMemStore() *MemStore {
	return &MemStore{
		users:            make(map[int]domain.User),
		projects:         make(map[int]domain.Project),
		assignments:      make(map[int]domain.ProjectAssignment),
		activities:       make(map[int]domain.Activity),
		socialMediaStats: make(map[int]domain.SocialMediaStat),
		teamPerformances: make(map[int]domain.TeamPerformance),
	}
}

func (s *MemStore) GetUser(ctx context.Context, id int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (s *MemStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *MemStore) CreateUser(ctx context.Context, in domain.InsertUser) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userID++
	u := domain.User{
		ID:       s.userID,
		Username: in.Username,
		Password: in.Password,
		Name:     in.Name,
		Email:    in.Email,
		Role:     in.Role,
		Avatar:   in.Avatar,
	}
	s.users[u.ID] = u
	return &u, nil
}

func (s *MemStore) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sortByID(out, func(u domain.User) int { return u.ID })
	return out, nil
}

func (s *MemStore) GetProject(ctx context.Context, id int) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (s *MemStore) GetAllProjects(ctx context.Context) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p)
	}
	sortByID(out, func(p domain.Project) int { return p.ID })
	return out, nil
}

func (s *MemStore) GetProjectsByCreator(ctx context.Context, userID int) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Project, 0)
	for _, p := range s.projects {
		if p.CreatedBy == userID {
			out = append(out, p)
		}
	}
	sortByID(out, func(p domain.Project) int { return p.ID })
	return out, nil
}

func (s *MemStore) CreateProject(ctx context.Context, in domain.InsertProject) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projectID++
	p := domain.Project{
		ID:          s.projectID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Progress:    in.Progress,
		DueDate:     in.DueDate,
		CreatedAt:   time.Now(),
		CreatedBy:   in.CreatedBy,
		Tags:        in.Tags,
	}
	s.projects[p.ID] = p
	return &p, nil
}

func (s *MemStore) UpdateProject(ctx context.Context, id int, upd domain.ProjectUpdate) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	upd.Apply(&p)
	s.projects[id] = p
	return &p, nil
}

func (s *MemStore) DeleteProject(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return false, nil
	}
	delete(s.projects, id)
	return true, nil
}

func (s *MemStore) AssignUserToProject(ctx context.Context, in domain.InsertProjectAssignment) (*domain.ProjectAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.assignmentID++
	a := domain.ProjectAssignment{
		ID:        s.assignmentID,
		ProjectID: in.ProjectID,
		UserID:    in.UserID,
	}
	s.assignments[a.ID] = a
	return &a, nil
}

func (s *MemStore) GetProjectAssignments(ctx context.Context, projectID int) ([]domain.ProjectAssignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ProjectAssignment, 0)
	for _, a := range s.assignments {
		if a.ProjectID == projectID {
			out = append(out, a)
		}
	}
	sortByID(out, func(a domain.ProjectAssignment) int { return a.ID })
	return out, nil
}

func (s *MemStore) GetUserAssignments(ctx context.Context, userID int) ([]domain.ProjectAssignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ProjectAssignment, 0)
	for _, a := range s.assignments {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sortByID(out, func(a domain.ProjectAssignment) int { return a.ID })
	return out, nil
}

func (s *MemStore) RemoveAssignment(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assignments[id]; !ok {
		return false, nil
	}
	delete(s.assignments, id)
	return true, nil
}

func (s *MemStore) AddActivity(ctx context.Context, in domain.InsertActivity) (*domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activityID++
	a := domain.Activity{
		ID:          s.activityID,
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		Timestamp:   time.Now(),
		UserID:      in.UserID,
		ProjectID:   in.ProjectID,
	}
	s.activities[a.ID] = a
	return &a, nil
}

func (s *MemStore) GetRecentActivities(ctx context.Context, limit int) ([]domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Activity, 0, len(s.activities))
	for _, a := range s.activities {
		out = append(out, a)
	}
	// Most recent first; id breaks timestamp ties so same-instant inserts
	// keep their causal order.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID > out[j].ID
	})
	if limit >= 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemStore) GetSocialMediaStats(ctx context.Context) ([]domain.SocialMediaStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.SocialMediaStat, 0, len(s.socialMediaStats))
	for _, st := range s.socialMediaStats {
		out = append(out, st)
	}
	sortByID(out, func(st domain.SocialMediaStat) int { return st.ID })
	return out, nil
}

func (s *MemStore) AddSocialMediaStat(ctx context.Context, in domain.InsertSocialMediaStat) (*domain.SocialMediaStat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.socialStatID++
	st := domain.SocialMediaStat{
		ID:         s.socialStatID,
		Platform:   in.Platform,
		Followers:  in.Followers,
		Engagement: in.Engagement,
		Growth:     in.Growth,
		Timestamp:  time.Now(),
	}
	s.socialMediaStats[st.ID] = st
	return &st, nil
}

func (s *MemStore) GetTeamPerformance(ctx context.Context) ([]domain.TeamPerformance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.TeamPerformance, 0, len(s.teamPerformances))
	for _, p := range s.teamPerformances {
		out = append(out, p)
	}
	sortByID(out, func(p domain.TeamPerformance) int { return p.ID })
	return out, nil
}

func (s *MemStore) AddTeamPerformance(ctx context.Context, in domain.InsertTeamPerformance) (*domain.TeamPerformance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.performanceID++
	p := domain.TeamPerformance{
		ID:          s.performanceID,
		Team:        in.Team,
		Performance: in.Performance,
		Timestamp:   time.Now(),
	}
	s.teamPerformances[p.ID] = p
	return &p, nil
}

func (s *MemStore) Ping(ctx context.Context) error {
	return nil
}

func sortByID[T any](items []T, id func(T) int) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}
