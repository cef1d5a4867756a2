package app

import (
	"context"
	"errors"
	"testing"

	"github.com/kdiallo/rianterm/internal/api"
	"github.com/kdiallo/rianterm/internal/auth"
	"github.com/kdiallo/rianterm/internal/router"
	"github.com/kdiallo/rianterm/internal/screens/dashboard"
	"github.com/kdiallo/rianterm/internal/screens/login"
)

type fakeBackend struct {
	identity *api.Identity
	meErr    error
}

func (f *fakeBackend) Me(ctx context.Context) (*api.Identity, error) {
	if f.meErr != nil {
		return nil, f.meErr
	}
	return f.identity, nil
}

func (f *fakeBackend) ProcessSession(ctx context.Context, token string) (*api.Identity, error) {
	return f.identity, nil
}

func (f *fakeBackend) Logout(ctx context.Context) error { return nil }
func (f *fakeBackend) ClearCredential() error           { return nil }

type noopNav struct{}

func (noopNav) OpenExternal(url string) error { return nil }

func newTestModel(backend auth.Backend) AppModel {
	session := auth.NewStore(backend, nil, noopNav{}, "https://auth.example.org", "https://portal.example.org/login")
	return newAppModel(Options{Session: session})
}

func TestGuardPendingRestoreHoldsPosition(t *testing.T) {
	m := newTestModel(&fakeBackend{meErr: api.ErrUnauthorized})

	// No restore has run yet; the session is Unknown and the guard must
	// not force navigation.
	if cmd := m.applyGuard(); cmd != nil {
		t.Fatal("expected no navigation while the session is unresolved")
	}
}

func TestGuardRedirectsAfterRestoreMiss(t *testing.T) {
	m := newTestModel(&fakeBackend{meErr: api.ErrUnauthorized})
	m.opts.Session.Restore(context.Background())

	cmd := m.applyGuard()
	if cmd == nil {
		t.Fatal("expected a redirect command")
	}
	msg, ok := cmd().(router.ResetScreenMsg)
	if !ok {
		t.Fatalf("expected ResetScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*login.LoginScreen); !ok {
		t.Fatalf("expected login screen, got %T", msg.Screen)
	}
}

func TestGuardRedirectsOnNetworkFailure(t *testing.T) {
	m := newTestModel(&fakeBackend{meErr: errors.New("connection refused")})
	m.opts.Session.Restore(context.Background())

	cmd := m.applyGuard()
	if cmd == nil {
		t.Fatal("expected a redirect command")
	}
	if _, ok := cmd().(router.ResetScreenMsg); !ok {
		t.Fatalf("expected ResetScreenMsg, got %T", cmd())
	}
}

func TestGuardRendersForAuthenticatedSession(t *testing.T) {
	m := newTestModel(&fakeBackend{identity: &api.Identity{ID: "u-1", Name: "Awa"}})
	m.opts.Session.Restore(context.Background())

	if cmd := m.applyGuard(); cmd != nil {
		t.Fatal("expected no navigation for an authenticated session")
	}
}

func TestGuardSkipsLoginForEstablishedSession(t *testing.T) {
	backend := &fakeBackend{identity: &api.Identity{ID: "u-1", Name: "Awa"}}
	session := auth.NewStore(backend, nil, noopNav{}, "https://auth.example.org", "https://portal.example.org/login")
	session.Restore(context.Background())

	m := AppModel{
		opts:   Options{Session: session},
		router: router.New(login.New(session, nil, nil, "")),
	}

	cmd := m.applyGuard()
	if cmd == nil {
		t.Fatal("expected a redirect to the dashboard")
	}
	msg, ok := cmd().(router.ResetScreenMsg)
	if !ok {
		t.Fatalf("expected ResetScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*dashboard.DashboardScreen); !ok {
		t.Fatalf("expected dashboard screen, got %T", msg.Screen)
	}
}
