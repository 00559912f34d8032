package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zylox-agency/dashboard-backend/internal/auth"
	"github.com/zylox-agency/dashboard-backend/internal/auth/session"
	"github.com/zylox-agency/dashboard-backend/internal/bootstrap"
	"github.com/zylox-agency/dashboard-backend/internal/dashboard/store"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	st := store.NewMemStore()
	require.NoError(t, store.Seed(context.Background(), st))

	sessions := session.NewMemoryStore(time.Hour)
	t.Cleanup(sessions.Close)

	return bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "test-service",
		Version:     "test",
		CORSOrigins: []string{"http://localhost:5173"},
		Store:       st,
		Sessions:    sessions,
	})
}

func post(t *testing.T, r *gin.Engine, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func get(t *testing.T, r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == auth.SessionCookie {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func TestRegisterLoginFlow(t *testing.T) {
	r := newAuthRouter(t)

	rr := post(t, r, "/api/register", gin.H{
		"username": "newbie",
		"password": "hunter2",
		"name":     "New Person",
		"email":    "newbie@zylox.agency",
	}, nil)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "newbie", created["username"])
	assert.Equal(t, "developer", created["role"], "role defaults when omitted")
	_, hasPassword := created["password"]
	assert.False(t, hasPassword)

	// Registration opens a session immediately.
	cookie := sessionCookie(t, rr)
	require.NotEmpty(t, cookie.Value)

	rr = get(t, r, "/api/user", []*http.Cookie{cookie})
	require.Equal(t, http.StatusOK, rr.Code)
	var me map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &me))
	assert.Equal(t, "newbie", me["username"])
}

func TestRegisterDuplicateUsername(t *testing.T) {
	r := newAuthRouter(t)

	rr := post(t, r, "/api/register", gin.H{
		"username": "moeed",
		"password": "whatever",
		"name":     "Impostor",
		"email":    "impostor@zylox.agency",
	}, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Username already exists")
}

func TestRegisterValidation(t *testing.T) {
	r := newAuthRouter(t)

	rr := post(t, r, "/api/register", gin.H{
		"username": "bad",
		"password": "pw",
		"name":     "Bad Email",
		"email":    "not-an-email",
	}, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var body struct {
		Message string `json:"message"`
		Errors  []struct {
			Field string `json:"field"`
			Rule  string `json:"rule"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Invalid user data", body.Message)
	require.NotEmpty(t, body.Errors)
	assert.Equal(t, "Email", body.Errors[0].Field)
	assert.Equal(t, "email", body.Errors[0].Rule)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newAuthRouter(t)

	rr := post(t, r, "/api/login", gin.H{"username": "moeed", "password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.Empty(t, rr.Result().Cookies())

	rr = post(t, r, "/api/login", gin.H{"username": "ghost", "password": "secret"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestLogoutDestroysSession(t *testing.T) {
	r := newAuthRouter(t)

	rr := post(t, r, "/api/login", gin.H{"username": "moeed", "password": "secret"}, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	cookie := sessionCookie(t, rr)

	rr = get(t, r, "/api/user", []*http.Cookie{cookie})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = post(t, r, "/api/logout", nil, []*http.Cookie{cookie})
	require.Equal(t, http.StatusOK, rr.Code)
	cleared := sessionCookie(t, rr)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)

	// The old token no longer resolves.
	rr = get(t, r, "/api/user", []*http.Cookie{cookie})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLoginRateLimited(t *testing.T) {
	r := newAuthRouter(t)

	// The per-IP burst is 5; hammering past it trips the limiter before
	// credentials are even checked.
	var sawTooMany bool
	for i := 0; i < 8; i++ {
		rr := post(t, r, "/api/login", gin.H{"username": "moeed", "password": "wrong"}, nil)
		if rr.Code == http.StatusTooManyRequests {
			assert.Contains(t, rr.Body.String(), "Too many login attempts")
			sawTooMany = true
			break
		}
		require.Equal(t, http.StatusUnauthorized, rr.Code)
	}
	assert.True(t, sawTooMany)
}
