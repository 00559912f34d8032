package http

import (
	"github.com/zylox-agency/dashboard-backend/internal/auth/session"
	"github.com/zylox-agency/dashboard-backend/internal/dashboard/store"
)

// Handler bundles the dependencies for the auth endpoints.
type Handler struct {
	store    store.Storage
	sessions session.Store
	limiter  *loginLimiter
}

func New(st store.Storage, sessions session.Store) *Handler {
	return &Handler{
		store:    st,
		sessions: sessions,
		limiter:  newLoginLimiter(),
	}
}

type registerReq struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Role     string  `json:"role"`
	Avatar   *string `json:"avatar"`
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
