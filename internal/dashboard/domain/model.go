package domain

import "time"

// User is an agency team member. Password holds a bcrypt hash and is never
// serialized.
type User struct {
	ID       int     `json:"id"`
	Username string  `json:"username"`
	Password string  `json:"-"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	Avatar   *string `json:"avatar"`
}

// Project statuses. Status is stored as free text; these are the values the
// dashboard UI offers.
const (
	StatusPlanning   = "planning"
	StatusInProgress = "in progress"
	StatusInReview   = "in review"
	StatusCompleted  = "completed"
	StatusOnHold     = "on hold"
)

type Project struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Progress    int       `json:"progress"`
	DueDate     string    `json:"dueDate"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   int       `json:"createdBy"`
	Tags        []string  `json:"tags"`
}

// ProjectAssignment links a user to a project. Duplicate links are allowed;
// neither side is checked for existence.
type ProjectAssignment struct {
	ID        int `json:"id"`
	ProjectID int `json:"projectId"`
	UserID    int `json:"userId"`
}

type Activity struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	UserID      *int      `json:"userId"`
	ProjectID   *int      `json:"projectId"`
}

type SocialMediaStat struct {
	ID         int       `json:"id"`
	Platform   string    `json:"platform"`
	Followers  int       `json:"followers"`
	Engagement int       `json:"engagement"`
	Growth     string    `json:"growth"`
	Timestamp  time.Time `json:"timestamp"`
}

type TeamPerformance struct {
	ID          int       `json:"id"`
	Team        string    `json:"team"`
	Performance int       `json:"performance"`
	Timestamp   time.Time `json:"timestamp"`
}

// Insert payloads. Ids and timestamps are assigned by the store.

type InsertUser struct {
	Username string
	Password string
	Name     string
	Email    string
	Role     string
	Avatar   *string
}

type InsertProject struct {
	Title       string
	Description string
	Status      string
	Progress    int
	DueDate     string
	CreatedBy   int
	Tags        []string
}

type InsertProjectAssignment struct {
	ProjectID int
	UserID    int
}

type InsertActivity struct {
	Title       string
	Description string
	Type        string
	UserID      *int
	ProjectID   *int
}

type InsertSocialMediaStat struct {
	Platform   string
	Followers  int
	Engagement int
	Growth     string
}

type InsertTeamPerformance struct {
	Team        string
	Performance int
}

// ProjectUpdate carries a partial update. Nil fields are left untouched, so
// the updatable set is exactly the insert field set.
type ProjectUpdate struct {
	Title       *string
	Description *string
	Status      *string
	Progress    *int
	DueDate     *string
	CreatedBy   *int
	Tags        *[]string
}

// Apply merges the non-nil fields over p.
func (u ProjectUpdate) Apply(p *Project) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.Progress != nil {
		p.Progress = *u.Progress
	}
	if u.DueDate != nil {
		p.DueDate = *u.DueDate
	}
	if u.CreatedBy != nil {
		p.CreatedBy = *u.CreatedBy
	}
	if u.Tags != nil {
		p.Tags = *u.Tags
	}
}

// UserRef is the reduced user projection embedded in activity rows.
type UserRef struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar"`
}

// ProjectRef is the reduced project projection embedded in activity rows.
type ProjectRef struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}
