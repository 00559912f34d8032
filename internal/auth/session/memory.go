package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

const sweepInterval = time.Minute

type memorySession struct {
	userID    int
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. A background janitor sweeps
// expired entries; Get also checks expiry itself, so the sweep only bounds
// memory, never correctness.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
	ttl      time.Duration
	done     chan struct{}
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &MemoryStore{
		sessions: make(map[string]memorySession),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go s.sweep()
	return s
}

func (s *MemoryStore) Create(ctx context.Context, userID int) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	s.sessions[token] = memorySession{
		userID:    userID,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()

	return token, nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) (int, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok || time.Now().After(sess.expiresAt) {
		return 0, ErrNoSession
	}
	return sess.userID, nil
}

func (s *MemoryStore) Destroy(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

// Close stops the janitor goroutine.
func (s *MemoryStore) Close() {
	close(s.done)
}

func (s *MemoryStore) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for token, sess := range s.sessions {
				if now.After(sess.expiresAt) {
					delete(s.sessions, token)
				}
			}
			s.mu.Unlock()
		}
	}
}
