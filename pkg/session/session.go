// Package session stores the puzzle-site session cookie used to download
// inputs.
//
// The cookie is kept in a small JSON file under the user's config
// directory so that it survives across invocations without living in the
// repository or the shell history:
//
//	store, err := session.NewFileStore("") // ~/.config/aoc/sessions/
//	sess, err := session.New(token, session.DefaultTTL)
//	err = store.Set(ctx, sess)
//
// Sessions carry their own expiry; [FileStore.Get] treats an expired
// session as absent and removes it.
package session

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/aoc/pkg/errors"
)

// DefaultTTL is how long a stored cookie is trusted. The site's own
// cookies last about a month.
const DefaultTTL = 30 * 24 * time.Hour

// Session is one stored cookie.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the session is past its expiry.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Masked returns the token with all but its last four characters hidden.
func (s *Session) Masked() string {
	if len(s.Token) <= 4 {
		return strings.Repeat("*", len(s.Token))
	}
	return strings.Repeat("*", len(s.Token)-4) + s.Token[len(s.Token)-4:]
}

// Store is the interface for session storage backends.
type Store interface {
	// Get returns the stored session, or nil when there is none or it
	// has expired.
	Get(ctx context.Context) (*Session, error)
	Set(ctx context.Context, sess *Session) error
	Delete(ctx context.Context) error
}

// New validates token and wraps it in a session valid for ttl.
func New(token string, ttl time.Duration) (*Session, error) {
	token = strings.TrimSpace(token)
	if err := errors.ValidateSession(token); err != nil {
		return nil, err
	}
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}, nil
}
