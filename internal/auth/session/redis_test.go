package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client, ttl), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := setupRedisStore(t, time.Hour)

	token, err := s.Create(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := s.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)

	require.NoError(t, s.Destroy(ctx, token))
	_, err = s.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestRedisStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s, mr := setupRedisStore(t, time.Minute)

	token, err := s.Create(ctx, 1)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = s.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestRedisStoreUnknownToken(t *testing.T) {
	ctx := context.Background()
	s, _ := setupRedisStore(t, time.Minute)

	_, err := s.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrNoSession)
	assert.NoError(t, s.Destroy(ctx, "nope"))
}
