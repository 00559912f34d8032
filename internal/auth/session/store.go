// Package session issues and resolves the opaque tokens behind the
// dashboard's session cookie. Tokens map to a user id and expire after a
// fixed TTL; there is no sliding renewal.
package session

import (
	"context"
	"errors"
	"time"
)

// DefaultTTL is the session lifetime used when no explicit TTL is
// configured.
const DefaultTTL = 24 * time.Hour

// ErrNoSession is returned by Get when the token is unknown or expired.
var ErrNoSession = errors.New("session: no such session")

// Store holds active sessions. Create returns a fresh opaque token; Get
// resolves a token to the user id it was issued for. Destroying an unknown
// token is a no-op.
type Store interface {
	Create(ctx context.Context, userID int) (string, error)
	Get(ctx context.Context, token string) (int, error)
	Destroy(ctx context.Context, token string) error
}
