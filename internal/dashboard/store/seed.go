package store

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/zylox-agency/dashboard-backend/internal/dashboard/domain"
)

type seedUser struct {
	username string
	password string
	name     string
	email    string
	role     string
}

// The agency roster the dashboard ships with. Passwords are hashed at seed
// time; the plaintext values below exist only so a fresh deployment is
// usable without a registration step.
var seedUsers = []seedUser{
	{"moeed", "secret", "Moeed Mirza", "moeed@zylox.agency", "Admin"},
	{"ahmad", "password", "Ahmad", "ahmad@zylox.agency", "Game Developer"},
	{"hasnain", "password", "Hasnain", "hasnain@zylox.agency", "WordPress Developer"},
	{"amaima", "password", "Amaima", "amaima@zylox.agency", "Shopify Expert"},
	{"shahram", "password", "Shahram", "shahram@zylox.agency", "Web Developer"},
}

var seedTeamPerformance = []domain.InsertTeamPerformance{
	{Team: "Design Team", Performance: 80},
	{Team: "Dev Team", Performance: 70},
	{Team: "Marketing", Performance: 90},
}

var seedSocialMediaStats = []domain.InsertSocialMediaStat{
	{Platform: "Twitter", Followers: 5200, Engagement: 65, Growth: "+12.6%"},
	{Platform: "Instagram", Followers: 8500, Engagement: 82, Growth: "+23.4%"},
	{Platform: "Facebook", Followers: 3800, Engagement: 45, Growth: "+4.2%"},
	{Platform: "LinkedIn", Followers: 4100, Engagement: 58, Growth: "+15.7%"},
}

// Seed inserts the fixed sample rows into an empty store: the agency users,
// three team-performance rows and four social-media-stat rows, in that
// order. Insertion order fixes the ids the dashboard expects.
func Seed(ctx context.Context, s Storage) error {
	users, err := s.GetAllUsers(ctx)
	if err != nil {
		return fmt.Errorf("seed precheck: %w", err)
	}
	if len(users) > 0 {
		return nil
	}

	for _, u := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
		_, err = s.CreateUser(ctx, domain.InsertUser{
			Username: u.username,
			Password: string(hash),
			Name:     u.name,
			Email:    u.email,
			Role:     u.role,
		})
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
	}

	for _, p := range seedTeamPerformance {
		if _, err := s.AddTeamPerformance(ctx, p); err != nil {
			return fmt.Errorf("seed team performance %s: %w", p.Team, err)
		}
	}

	for _, st := range seedSocialMediaStats {
		if _, err := s.AddSocialMediaStat(ctx, st); err != nil {
			return fmt.Errorf("seed social media stat %s: %w", st.Platform, err)
		}
	}

	return nil
}
