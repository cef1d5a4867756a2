package login

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/kdiallo/rianterm/internal/api"
	"github.com/kdiallo/rianterm/internal/auth"
	"github.com/kdiallo/rianterm/internal/router"
)

// stubBackend satisfies auth.Backend with canned responses.
type stubBackend struct {
	identity   *api.Identity
	processErr error
	processed  []string
}

func (s *stubBackend) Me(ctx context.Context) (*api.Identity, error) {
	if s.identity == nil {
		return nil, api.ErrUnauthorized
	}
	return s.identity, nil
}

func (s *stubBackend) ProcessSession(ctx context.Context, token string) (*api.Identity, error) {
	s.processed = append(s.processed, token)
	if s.processErr != nil {
		return nil, s.processErr
	}
	return s.identity, nil
}

func (s *stubBackend) Logout(ctx context.Context) error { return nil }
func (s *stubBackend) ClearCredential() error           { return nil }

func newTestLogin(backend *stubBackend, fragment string) *LoginScreen {
	session := auth.NewStore(backend, nil, nil, "https://auth.example.org", "https://portal.example.org/login")
	return New(session, nil, nil, fragment)
}

func TestInitWithFragmentStartsExchange(t *testing.T) {
	backend := &stubBackend{identity: &api.Identity{ID: "u-1", Name: "Aminata"}}
	l := newTestLogin(backend, "https://portal.example.org/login#session_id=tok-1")

	cmd := l.Init()
	if cmd == nil {
		t.Fatal("expected exchange command from Init")
	}
	if !l.ExchangePending() {
		t.Error("expected a pending exchange while the fragment is unconsumed")
	}
}

func TestExchangeSuccessResetsToDashboard(t *testing.T) {
	backend := &stubBackend{identity: &api.Identity{ID: "u-1"}}
	l := newTestLogin(backend, "#session_id=tok-1")

	s, cmd := l.Update(exchangeResultMsg{Identity: backend.identity})
	if s != l {
		t.Fatal("login screen should remain until the reset command runs")
	}
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.ResetScreenMsg); !ok {
		t.Error("expected ResetScreenMsg to the dashboard")
	}
	if l.ExchangePending() {
		t.Error("fragment should be cleared after a successful exchange")
	}
}

func TestExchangeFailureKeepsFragment(t *testing.T) {
	backend := &stubBackend{processErr: errors.New("token already consumed")}
	l := newTestLogin(backend, "#session_id=tok-1")

	_, cmd := l.Update(exchangeResultMsg{Err: backend.processErr})
	if cmd != nil {
		t.Fatal("a failed exchange must not navigate")
	}
	if l.errMsg == "" {
		t.Error("expected an error message")
	}
	if !l.ExchangePending() {
		t.Error("the fragment is kept so the user can retry")
	}
}

func TestEnterWithoutTokenShowsError(t *testing.T) {
	backend := &stubBackend{}
	l := newTestLogin(backend, "")
	l.Init()

	_, _ = l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(l.errMsg, "session_id") {
		t.Errorf("expected a no-token error, got %q", l.errMsg)
	}
	if len(backend.processed) != 0 {
		t.Error("no exchange should reach the backend without a token")
	}
}

func TestReentryGuardSkipsToDashboard(t *testing.T) {
	backend := &stubBackend{identity: &api.Identity{ID: "u-1"}}
	session := auth.NewStore(backend, nil, nil, "https://auth.example.org", "https://portal.example.org/login")
	session.Restore(context.Background())

	l := New(session, nil, nil, "")
	cmd := l.Init()
	if cmd == nil {
		t.Fatal("expected a navigation command for an already-authenticated session")
	}
	if _, ok := cmd().(router.ResetScreenMsg); !ok {
		t.Error("expected ResetScreenMsg to the dashboard")
	}
}
