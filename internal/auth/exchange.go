package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/kdiallo/rianterm/internal/api"
	"github.com/kdiallo/rianterm/internal/store"
)

const tokenMarker = "session_id="

// ErrNoToken means the fragment carries no session_id marker. Callers treat
// it as "nothing to exchange", not a failure.
var ErrNoToken = errors.New("no session_id token in fragment")

// ParseFragmentToken extracts the one-time token from a navigation fragment.
// Accepts a bare fragment ("session_id=abc&foo=bar"), a fragment with the
// leading hash, or a full callback URL; the token ends at the next "&" or the
// end of the string.
func ParseFragmentToken(fragment string) (string, error) {
	s := fragment
	if i := strings.Index(s, "#"); i >= 0 {
		s = s[i+1:]
	}

	i := strings.Index(s, tokenMarker)
	if i < 0 {
		return "", ErrNoToken
	}
	token := s[i+len(tokenMarker):]
	if j := strings.Index(token, "&"); j >= 0 {
		token = token[:j]
	}
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// Exchange trades a one-time token for an established session. On success the
// store transitions to Authenticated and the backend's session cookie is
// persisted by the client. On failure the current state is left untouched: a
// consumed or invalid token fails at the backend, and a second invocation
// with the same token must not corrupt an already-authenticated state.
func (s *Store) Exchange(ctx context.Context, token string) (*api.Identity, error) {
	identity, err := s.backend.ProcessSession(ctx, token)

	s.record(ctx, store.AuthEventData{
		Action:  store.AuthActionExchange,
		Success: err == nil,
		UserID:  userID(identity),
		Message: errMessage(err),
	})

	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.identity = identity
	s.loading = false
	s.mu.Unlock()

	return identity, nil
}

// ExchangeFragment parses the fragment and exchanges the embedded token.
// ErrNoToken passes through untouched so callers can distinguish "nothing to
// do" from a failed exchange.
func (s *Store) ExchangeFragment(ctx context.Context, fragment string) (*api.Identity, error) {
	token, err := ParseFragmentToken(fragment)
	if err != nil {
		return nil, err
	}
	return s.Exchange(ctx, token)
}
