package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)
	defer s.Close()

	token, err := s.Create(ctx, 7)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := s.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, 7, userID)

	// Tokens are unique per session.
	token2, err := s.Create(ctx, 7)
	require.NoError(t, err)
	assert.NotEqual(t, token, token2)

	require.NoError(t, s.Destroy(ctx, token))
	_, err = s.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)

	// Destroying an unknown token is a no-op.
	assert.NoError(t, s.Destroy(ctx, "unknown"))
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(10 * time.Millisecond)
	defer s.Close()

	token, err := s.Create(ctx, 1)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = s.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}
