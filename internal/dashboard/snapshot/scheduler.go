// Package snapshot re-records the current social-media and team-performance
// rows on a nightly schedule, so the append-only stat collections build up
// the history the dashboard growth charts draw from.
package snapshot

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/zylox-agency/dashboard-backend/internal/dashboard/domain"
	"github.com/zylox-agency/dashboard-backend/internal/dashboard/store"
)

type Scheduler struct {
	store store.Storage
	cron  *cron.Cron
}

func NewScheduler(st store.Storage) *Scheduler {
	return &Scheduler{store: st, cron: cron.New(cron.WithSeconds())}
}

// Start schedules the nightly snapshot (12:00 AM).
func (s *Scheduler) Start() {
	_, err := s.cron.AddFunc("0 0 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.Run(ctx); err != nil {
			log.Printf("Stats snapshot failed: %v", err)
		}
	})
	if err != nil {
		log.Printf("Failed to create snapshot cron job: %v", err)
		return
	}

	log.Println("Stats snapshot scheduler started (running nightly at 12:00AM)")
	s.cron.Start()
}

// Stop halts the schedule; a running snapshot finishes.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// Run appends one fresh row per platform and per team, carrying the most
// recent values forward under a new timestamp.
func (s *Scheduler) Run(ctx context.Context) error {
	stats, err := s.store.GetSocialMediaStats(ctx)
	if err != nil {
		return err
	}
	// Rows are in insertion order, so the last row per platform wins.
	latestStat := make(map[string]domain.SocialMediaStat)
	for _, st := range stats {
		latestStat[st.Platform] = st
	}
	for _, st := range latestStat {
		_, err := s.store.AddSocialMediaStat(ctx, domain.InsertSocialMediaStat{
			Platform:   st.Platform,
			Followers:  st.Followers,
			Engagement: st.Engagement,
			Growth:     st.Growth,
		})
		if err != nil {
			return err
		}
	}

	performance, err := s.store.GetTeamPerformance(ctx)
	if err != nil {
		return err
	}
	latestPerf := make(map[string]domain.TeamPerformance)
	for _, p := range performance {
		latestPerf[p.Team] = p
	}
	for _, p := range latestPerf {
		_, err := s.store.AddTeamPerformance(ctx, domain.InsertTeamPerformance{
			Team:        p.Team,
			Performance: p.Performance,
		})
		if err != nil {
			return err
		}
	}

	return nil
}
