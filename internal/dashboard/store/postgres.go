package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zylox-agency/dashboard-backend/internal/dashboard/domain"
)

// PgStore is the Postgres-backed Storage implementation. The table layout
// matches the in-memory model column for column; serial primary keys give
// the same monotonic id behavior.
type PgStore struct {
	pool *pgxpool.Pool
}

var _ Storage = (*PgStore)(nil)

func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS users (
	id         SERIAL PRIMARY KEY,
	username   TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL UNIQUE,
	role       TEXT NOT NULL DEFAULT 'developer',
	avatar     TEXT
);

CREATE TABLE IF NOT EXISTS projects (
	id          SERIAL PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	status      TEXT NOT NULL DEFAULT 'planning',
	progress    INTEGER NOT NULL DEFAULT 0,
	due_date    TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	created_by  INTEGER NOT NULL,
	tags        TEXT[]
);

CREATE TABLE IF NOT EXISTS project_assignments (
	id         SERIAL PRIMARY KEY,
	project_id INTEGER NOT NULL,
	user_id    INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS activities (
	id          SERIAL PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	type        TEXT NOT NULL,
	timestamp   TIMESTAMPTZ NOT NULL DEFAULT now(),
	user_id     INTEGER,
	project_id  INTEGER
);

CREATE TABLE IF NOT EXISTS social_media_stats (
	id         SERIAL PRIMARY KEY,
	platform   TEXT NOT NULL,
	followers  INTEGER NOT NULL,
	engagement INTEGER NOT NULL,
	growth     TEXT NOT NULL,
	timestamp  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS team_performance (
	id          SERIAL PRIMARY KEY,
	team        TEXT NOT NULL,
	performance INTEGER NOT NULL,
	timestamp   TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Migrate creates the tables if they do not exist.
func (s *PgStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

const userCols = "id, username, password, name, email, role, avatar"

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.Name, &u.Email, &u.Role, &u.Avatar)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *PgStore) GetUser(ctx context.Context, id int) (*domain.User, error) {
	return scanUser(s.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE id = $1`, id))
}

func (s *PgStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return scanUser(s.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE username = $1`, username))
}

func (s *PgStore) CreateUser(ctx context.Context, in domain.InsertUser) (*domain.User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx, `
INSERT INTO users (username, password, name, email, role, avatar)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING `+userCols, in.Username, in.Password, in.Name, in.Email, in.Role, in.Avatar))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *PgStore) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+userCols+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.User, 0, 8)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.Name, &u.Email, &u.Role, &u.Avatar); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

const projectCols = "id, title, description, status, progress, due_date, created_at, created_by, tags"

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Status, &p.Progress,
		&p.DueDate, &p.CreatedAt, &p.CreatedBy, &p.Tags)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *PgStore) GetProject(ctx context.Context, id int) (*domain.Project, error) {
	return scanProject(s.pool.QueryRow(ctx,
		`SELECT `+projectCols+` FROM projects WHERE id = $1`, id))
}

func (s *PgStore) queryProjects(ctx context.Context, q string, args ...any) ([]domain.Project, error) {
	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Status, &p.Progress,
			&p.DueDate, &p.CreatedAt, &p.CreatedBy, &p.Tags); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PgStore) GetAllProjects(ctx context.Context) ([]domain.Project, error) {
	return s.queryProjects(ctx, `SELECT `+projectCols+` FROM projects ORDER BY id`)
}

func (s *PgStore) GetProjectsByCreator(ctx context.Context, userID int) ([]domain.Project, error) {
	return s.queryProjects(ctx,
		`SELECT `+projectCols+` FROM projects WHERE created_by = $1 ORDER BY id`, userID)
}

func (s *PgStore) CreateProject(ctx context.Context, in domain.InsertProject) (*domain.Project, error) {
	return scanProject(s.pool.QueryRow(ctx, `
INSERT INTO projects (title, description, status, progress, due_date, created_by, tags)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING `+projectCols,
		in.Title, in.Description, in.Status, in.Progress, in.DueDate, in.CreatedBy, in.Tags))
}

func (s *PgStore) UpdateProject(ctx context.Context, id int, upd domain.ProjectUpdate) (*domain.Project, error) {
	return scanProject(s.pool.QueryRow(ctx, `
UPDATE projects SET
	title       = COALESCE($2, title),
	description = COALESCE($3, description),
	status      = COALESCE($4, status),
	progress    = COALESCE($5, progress),
	due_date    = COALESCE($6, due_date),
	created_by  = COALESCE($7, created_by),
	tags        = COALESCE($8, tags)
WHERE id = $1
RETURNING `+projectCols,
		id, upd.Title, upd.Description, upd.Status, upd.Progress, upd.DueDate, upd.CreatedBy, upd.Tags))
}

func (s *PgStore) DeleteProject(ctx context.Context, id int) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PgStore) AssignUserToProject(ctx context.Context, in domain.InsertProjectAssignment) (*domain.ProjectAssignment, error) {
	var a domain.ProjectAssignment
	err := s.pool.QueryRow(ctx, `
INSERT INTO project_assignments (project_id, user_id)
VALUES ($1, $2)
RETURNING id, project_id, user_id`, in.ProjectID, in.UserID).
		Scan(&a.ID, &a.ProjectID, &a.UserID)
	if err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}
	return &a, nil
}

func (s *PgStore) queryAssignments(ctx context.Context, q string, args ...any) ([]domain.ProjectAssignment, error) {
	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ProjectAssignment, 0, 8)
	for rows.Next() {
		var a domain.ProjectAssignment
		if err := rows.Scan(&a.ID, &a.ProjectID, &a.UserID); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *PgStore) GetProjectAssignments(ctx context.Context, projectID int) ([]domain.ProjectAssignment, error) {
	return s.queryAssignments(ctx,
		`SELECT id, project_id, user_id FROM project_assignments WHERE project_id = $1 ORDER BY id`, projectID)
}

func (s *PgStore) GetUserAssignments(ctx context.Context, userID int) ([]domain.ProjectAssignment, error) {
	return s.queryAssignments(ctx,
		`SELECT id, project_id, user_id FROM project_assignments WHERE user_id = $1 ORDER BY id`, userID)
}

func (s *PgStore) RemoveAssignment(ctx context.Context, id int) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM project_assignments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PgStore) AddActivity(ctx context.Context, in domain.InsertActivity) (*domain.Activity, error) {
	var a domain.Activity
	err := s.pool.QueryRow(ctx, `
INSERT INTO activities (title, description, type, user_id, project_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, title, description, type, timestamp, user_id, project_id`,
		in.Title, in.Description, in.Type, in.UserID, in.ProjectID).
		Scan(&a.ID, &a.Title, &a.Description, &a.Type, &a.Timestamp, &a.UserID, &a.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("add activity: %w", err)
	}
	return &a, nil
}

func (s *PgStore) GetRecentActivities(ctx context.Context, limit int) ([]domain.Activity, error) {
	rows, err := s.pool.Query(ctx, `
SELECT id, title, description, type, timestamp, user_id, project_id
FROM activities
ORDER BY timestamp DESC, id DESC
LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Activity, 0, limit)
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Type, &a.Timestamp, &a.UserID, &a.ProjectID); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *PgStore) GetSocialMediaStats(ctx context.Context) ([]domain.SocialMediaStat, error) {
	rows, err := s.pool.Query(ctx, `
SELECT id, platform, followers, engagement, growth, timestamp
FROM social_media_stats ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.SocialMediaStat, 0, 8)
	for rows.Next() {
		var st domain.SocialMediaStat
		if err := rows.Scan(&st.ID, &st.Platform, &st.Followers, &st.Engagement, &st.Growth, &st.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (s *PgStore) AddSocialMediaStat(ctx context.Context, in domain.InsertSocialMediaStat) (*domain.SocialMediaStat, error) {
	var st domain.SocialMediaStat
	err := s.pool.QueryRow(ctx, `
INSERT INTO social_media_stats (platform, followers, engagement, growth)
VALUES ($1, $2, $3, $4)
RETURNING id, platform, followers, engagement, growth, timestamp`,
		in.Platform, in.Followers, in.Engagement, in.Growth).
		Scan(&st.ID, &st.Platform, &st.Followers, &st.Engagement, &st.Growth, &st.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("add social media stat: %w", err)
	}
	return &st, nil
}

func (s *PgStore) GetTeamPerformance(ctx context.Context) ([]domain.TeamPerformance, error) {
	rows, err := s.pool.Query(ctx, `
SELECT id, team, performance, timestamp FROM team_performance ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.TeamPerformance, 0, 8)
	for rows.Next() {
		var p domain.TeamPerformance
		if err := rows.Scan(&p.ID, &p.Team, &p.Performance, &p.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PgStore) AddTeamPerformance(ctx context.Context, in domain.InsertTeamPerformance) (*domain.TeamPerformance, error) {
	var p domain.TeamPerformance
	err := s.pool.QueryRow(ctx, `
INSERT INTO team_performance (team, performance)
VALUES ($1, $2)
RETURNING id, team, performance, timestamp`, in.Team, in.Performance).
		Scan(&p.ID, &p.Team, &p.Performance, &p.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("add team performance: %w", err)
	}
	return &p, nil
}

func (s *PgStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
