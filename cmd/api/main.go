package main

import (
	"context"
	"log"
	"time"

	"github.com/zylox-agency/dashboard-backend/config"
	"github.com/zylox-agency/dashboard-backend/internal/auth/session"
	"github.com/zylox-agency/dashboard-backend/internal/bootstrap"
	"github.com/zylox-agency/dashboard-backend/internal/dashboard/snapshot"
	"github.com/zylox-agency/dashboard-backend/internal/dashboard/store"
)

const serviceName = "agency-dashboard"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	var st store.Storage
	if cfg.Database.DSN != "" {
		pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer pool.Close()

		pg := store.NewPgStore(pool)
		if err := pg.Migrate(ctx); err != nil {
			log.Fatalf("postgres: %v", err)
		}
		st = pg
		log.Println("Using Postgres store")
	} else {
		st = store.NewMemStore()
		log.Println("Using in-memory store")
	}

	if err := store.Seed(ctx, st); err != nil {
		log.Fatalf("seed: %v", err)
	}

	ttl := time.Duration(cfg.Session.TTLHours) * time.Hour
	var sessions session.Store
	if cfg.Redis.Addr != "" {
		client, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer client.Close()

		sessions = session.NewRedisStore(client, ttl)
		log.Println("Using Redis session store")
	} else {
		mem := session.NewMemoryStore(ttl)
		defer mem.Close()
		sessions = mem
	}

	if cfg.App.SnapshotsEnabled {
		sched := snapshot.NewScheduler(st)
		sched.Start()
		defer sched.Stop()
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,
		Store:       st,
		Sessions:    sessions,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	log.Fatal(r.Run(":" + cfg.Server.Port))
}
