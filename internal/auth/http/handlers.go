package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	httpapi "github.com/zylox-agency/dashboard-backend/internal/api/http"
	"github.com/zylox-agency/dashboard-backend/internal/auth"
	"github.com/zylox-agency/dashboard-backend/internal/auth/session"
	"github.com/zylox-agency/dashboard-backend/internal/dashboard/domain"
)

func (h *Handler) register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.ValidationError(c, http.StatusBadRequest, "Invalid user data", err)
		return
	}

	_, err := h.store.GetUserByUsername(c.Request.Context(), req.Username)
	if err == nil {
		httpapi.Error(c, http.StatusBadRequest, "Username already exists")
		return
	}
	if !errors.Is(err, domain.ErrNotFound) {
		httpapi.Error(c, http.StatusInternalServerError, "Error creating user")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httpapi.Error(c, http.StatusInternalServerError, "Error creating user")
		return
	}

	role := req.Role
	if role == "" {
		role = "developer"
	}

	user, err := h.store.CreateUser(c.Request.Context(), domain.InsertUser{
		Username: req.Username,
		Password: string(hash),
		Name:     req.Name,
		Email:    req.Email,
		Role:     role,
		Avatar:   req.Avatar,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			httpapi.Error(c, http.StatusBadRequest, "Username already exists")
			return
		}
		httpapi.Error(c, http.StatusInternalServerError, "Error creating user")
		return
	}

	if err := h.openSession(c, user.ID); err != nil {
		httpapi.Error(c, http.StatusInternalServerError, "Error creating session")
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) login(c *gin.Context) {
	if !h.limiter.allow(c.ClientIP()) {
		httpapi.Error(c, http.StatusTooManyRequests, "Too many login attempts")
		return
	}

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.ValidationError(c, http.StatusBadRequest, "Invalid credentials payload", err)
		return
	}

	user, err := h.store.GetUserByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		httpapi.Error(c, http.StatusInternalServerError, "Error logging in")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	if err := h.openSession(c, user.ID); err != nil {
		httpapi.Error(c, http.StatusInternalServerError, "Error creating session")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) logout(c *gin.Context) {
	if token, err := c.Cookie(auth.SessionCookie); err == nil && token != "" {
		if err := h.sessions.Destroy(c.Request.Context(), token); err != nil {
			httpapi.Error(c, http.StatusInternalServerError, "Error logging out")
			return
		}
	}
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	c.Status(http.StatusOK)
}

func (h *Handler) currentUser(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Session outlived the user row.
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		httpapi.Error(c, http.StatusInternalServerError, "Error fetching user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) openSession(c *gin.Context, userID int) error {
	token, err := h.sessions.Create(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookie, token, int(session.DefaultTTL.Seconds()), "/", "", false, true)
	return nil
}
