package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/kdiallo/rianterm/internal/api"
	"github.com/kdiallo/rianterm/internal/store"
)

// State is the session state variant. Exactly one holds at any time.
type State int

const (
	// StateUnknown is the initial state, before the first restore attempt
	// completes. Protected views show a loading indicator, never a redirect.
	StateUnknown State = iota

	// StateAuthenticated means a backend session is established.
	StateAuthenticated

	// StateUnauthenticated means no session exists.
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}

// Session is a read-only view of the current session state.
type Session struct {
	State    State
	Identity *api.Identity
	Loading  bool
}

// Backend is the slice of the API client the session store depends on.
type Backend interface {
	Me(ctx context.Context) (*api.Identity, error)
	ProcessSession(ctx context.Context, token string) (*api.Identity, error)
	Logout(ctx context.Context) error
	ClearCredential() error
}

// Navigator issues external navigation side effects. Login needs a full
// hand-off to the identity broker in a browser; keeping it behind an
// interface keeps the store testable without one.
type Navigator interface {
	OpenExternal(url string) error
}

// Store is the single source of truth for "is the user signed in". It owns
// the Identity exclusively: replaced wholesale on login/logout, never
// partially mutated. Created at process start, reset on logout, torn down
// never.
type Store struct {
	backend Backend
	events  store.EventRepo
	nav     Navigator

	// authURL is the identity broker root; returnURL is where the broker
	// sends the user back after consent.
	authURL   string
	returnURL string

	mu       sync.Mutex
	state    State
	identity *api.Identity
	loading  bool
}

// NewStore creates a session store in the Unknown state with the loading flag
// set. events and nav may be nil (no journal, no browser hand-off).
func NewStore(backend Backend, events store.EventRepo, nav Navigator, authURL, returnURL string) *Store {
	return &Store{
		backend:   backend,
		events:    events,
		nav:       nav,
		authURL:   strings.TrimRight(authURL, "/"),
		returnURL: returnURL,
		state:     StateUnknown,
		loading:   true,
	}
}

// Current returns the session state. Never blocks on the network.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Session{State: s.state, Identity: s.identity, Loading: s.loading}
}

// Restore attempts to recover an existing session using the ambient
// credential. Any failure (network error, 401, malformed response) lands in
// Unauthenticated: a restore miss is the normal first-visit path and is never
// surfaced to the user. The loading flag clears on both paths.
func (s *Store) Restore(ctx context.Context) Session {
	identity, err := s.backend.Me(ctx)

	s.mu.Lock()
	if err != nil {
		s.state = StateUnauthenticated
		s.identity = nil
	} else {
		s.state = StateAuthenticated
		s.identity = identity
	}
	s.loading = false
	sess := Session{State: s.state, Identity: s.identity}
	s.mu.Unlock()

	s.record(ctx, store.AuthEventData{
		Action:  store.AuthActionRestore,
		Success: err == nil,
		UserID:  userID(identity),
		Message: restoreMessage(err),
	})
	return sess
}

// BeginLogin hands the user off to the identity broker with the return path
// attached, so the broker can send them back after consent. This is a side
// effect, not a state transition: the session state is untouched until the
// returned token is exchanged. The broker URL is returned so callers can
// print it when no browser is available.
func (s *Store) BeginLogin(ctx context.Context, returnPath string) (string, error) {
	target := s.returnURL
	if returnPath != "" {
		target = strings.TrimRight(s.returnURL, "/") + returnPath
	}
	brokerURL := s.authURL + "/?redirect=" + url.QueryEscape(target)

	var err error
	if s.nav != nil {
		err = s.nav.OpenExternal(brokerURL)
	}

	s.record(ctx, store.AuthEventData{
		Action:  store.AuthActionLoginRedirect,
		Success: err == nil,
		Message: errMessage(err),
	})
	if err != nil {
		return brokerURL, fmt.Errorf("open identity broker: %w", err)
	}
	return brokerURL, nil
}

// Logout terminates the session. The backend call is best-effort: local state
// clears unconditionally so a dead session can never strand the user in an
// authenticated-looking UI. Backend failures are logged, never blocking.
func (s *Store) Logout(ctx context.Context) {
	err := s.backend.Logout(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: backend logout failed: %v\n", err)
	}
	if clearErr := s.backend.ClearCredential(); clearErr != nil {
		fmt.Fprintf(os.Stderr, "warning: clear credential: %v\n", clearErr)
	}

	s.mu.Lock()
	uid := userID(s.identity)
	s.state = StateUnauthenticated
	s.identity = nil
	s.loading = false
	s.mu.Unlock()

	s.record(ctx, store.AuthEventData{
		Action:  store.AuthActionLogout,
		Success: err == nil,
		UserID:  uid,
		Message: errMessage(err),
	})
}

// record appends an auth event, best-effort.
func (s *Store) record(ctx context.Context, data store.AuthEventData) {
	if s.events == nil {
		return
	}
	if err := s.events.AppendAuthEvent(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record auth event: %v\n", err)
	}
}

func userID(id *api.Identity) string {
	if id == nil {
		return ""
	}
	return id.ID
}

// restoreMessage keeps the expected 401 miss out of the journal noise.
func restoreMessage(err error) string {
	if err == nil || errors.Is(err, api.ErrUnauthorized) {
		return ""
	}
	return err.Error()
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
