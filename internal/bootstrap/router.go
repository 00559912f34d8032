package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/zylox-agency/dashboard-backend/internal/api/http"
	"github.com/zylox-agency/dashboard-backend/internal/api/http/middleware"
	authhttp "github.com/zylox-agency/dashboard-backend/internal/auth/http"
	authmw "github.com/zylox-agency/dashboard-backend/internal/auth/middleware"
	"github.com/zylox-agency/dashboard-backend/internal/auth/session"
	dashhttp "github.com/zylox-agency/dashboard-backend/internal/dashboard/http"
	"github.com/zylox-agency/dashboard-backend/internal/dashboard/store"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	Store       store.Storage
	Sessions    session.Store
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")
	api.Use(authmw.WithSession(dep.Sessions))

	authHandler := authhttp.New(dep.Store, dep.Sessions)
	authHandler.Register(api)

	protected := api.Group("")
	protected.Use(authmw.RequireUser())

	dashHandler := dashhttp.New(dep.Store)
	dashHandler.Register(protected)

	return r
}
