package http

import (
	"sync"

	"golang.org/x/time/rate"
)

// Login throttle: 5 attempts burst, refilling one every 2 seconds, per
// client IP.
const (
	loginRatePerSec = 0.5
	loginBurst      = 5
)

type loginLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newLoginLimiter() *loginLimiter {
	return &loginLimiter{limiters: make(map[string]*rate.Limiter)}
}

func (l *loginLimiter) allow(ip string) bool {
	l.mu.Lock()
	lim, ok := l.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(loginRatePerSec), loginBurst)
		l.limiters[ip] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}
