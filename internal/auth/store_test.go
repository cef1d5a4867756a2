package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/kdiallo/rianterm/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	meFunc      func(ctx context.Context) (*api.Identity, error)
	processFunc func(ctx context.Context, token string) (*api.Identity, error)
	logoutErr   error
	clearErr    error

	logoutCalled bool
	clearCalled  bool
	lastToken    string
}

func (f *fakeBackend) Me(ctx context.Context) (*api.Identity, error) {
	if f.meFunc == nil {
		return nil, api.ErrUnauthorized
	}
	return f.meFunc(ctx)
}

func (f *fakeBackend) ProcessSession(ctx context.Context, token string) (*api.Identity, error) {
	f.lastToken = token
	if f.processFunc == nil {
		return nil, errors.New("no process func")
	}
	return f.processFunc(ctx, token)
}

func (f *fakeBackend) Logout(ctx context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

func (f *fakeBackend) ClearCredential() error {
	f.clearCalled = true
	return f.clearErr
}

type fakeNav struct {
	opened []string
	err    error
}

func (f *fakeNav) OpenExternal(url string) error {
	f.opened = append(f.opened, url)
	return f.err
}

var testIdentity = &api.Identity{ID: "u-1", Email: "aminata@example.org", Name: "Aminata"}

func newTestStore(backend Backend, nav Navigator) *Store {
	return NewStore(backend, nil, nav, "https://auth.example.org", "https://portal.example.org/login")
}

func TestCurrentStartsUnknownAndLoading(t *testing.T) {
	s := newTestStore(&fakeBackend{}, nil)

	sess := s.Current()
	assert.Equal(t, StateUnknown, sess.State)
	assert.True(t, sess.Loading)
	assert.Nil(t, sess.Identity)
}

func TestRestoreSuccess(t *testing.T) {
	backend := &fakeBackend{
		meFunc: func(ctx context.Context) (*api.Identity, error) { return testIdentity, nil },
	}
	s := newTestStore(backend, nil)

	sess := s.Restore(context.Background())
	assert.Equal(t, StateAuthenticated, sess.State)
	require.NotNil(t, sess.Identity)
	assert.Equal(t, "u-1", sess.Identity.ID)
	assert.False(t, s.Current().Loading)
}

func TestRestoreMissIsUnauthenticated(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"no credential", api.ErrUnauthorized},
		{"network failure", errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{
				meFunc: func(ctx context.Context) (*api.Identity, error) { return nil, tt.err },
			}
			s := newTestStore(backend, nil)

			sess := s.Restore(context.Background())
			assert.Equal(t, StateUnauthenticated, sess.State)
			assert.Nil(t, sess.Identity)
			assert.False(t, s.Current().Loading)
		})
	}
}

func TestExchangeSuccess(t *testing.T) {
	backend := &fakeBackend{
		processFunc: func(ctx context.Context, token string) (*api.Identity, error) {
			return testIdentity, nil
		},
	}
	s := newTestStore(backend, nil)

	identity, err := s.Exchange(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "u-1", identity.ID)
	assert.Equal(t, "tok-123", backend.lastToken)

	sess := s.Current()
	assert.Equal(t, StateAuthenticated, sess.State)
	assert.False(t, sess.Loading)
}

func TestExchangeFailureLeavesStateUntouched(t *testing.T) {
	calls := 0
	backend := &fakeBackend{
		meFunc: func(ctx context.Context) (*api.Identity, error) { return testIdentity, nil },
		processFunc: func(ctx context.Context, token string) (*api.Identity, error) {
			calls++
			if calls > 1 {
				return nil, errors.New("token already consumed")
			}
			return testIdentity, nil
		},
	}
	s := newTestStore(backend, nil)

	_, err := s.Exchange(context.Background(), "tok-123")
	require.NoError(t, err)

	// A replayed token fails at the backend but must not demote the
	// session that the first exchange established.
	_, err = s.Exchange(context.Background(), "tok-123")
	require.Error(t, err)
	assert.Equal(t, StateAuthenticated, s.Current().State)
}

func TestExchangeFragmentNoToken(t *testing.T) {
	backend := &fakeBackend{}
	s := newTestStore(backend, nil)

	_, err := s.ExchangeFragment(context.Background(), "other=thing")
	assert.ErrorIs(t, err, ErrNoToken)
	assert.Empty(t, backend.lastToken)
	assert.Equal(t, StateUnknown, s.Current().State)
}

func TestBeginLoginOpensBroker(t *testing.T) {
	nav := &fakeNav{}
	s := newTestStore(&fakeBackend{}, nav)

	url, err := s.BeginLogin(context.Background(), "/dashboard")
	require.NoError(t, err)
	assert.Equal(t, "https://auth.example.org/?redirect=https%3A%2F%2Fportal.example.org%2Flogin%2Fdashboard", url)
	require.Len(t, nav.opened, 1)
	assert.Equal(t, url, nav.opened[0])

	// The hand-off is a side effect only.
	assert.Equal(t, StateUnknown, s.Current().State)
}

func TestBeginLoginBrowserFailure(t *testing.T) {
	nav := &fakeNav{err: errors.New("no display")}
	s := newTestStore(&fakeBackend{}, nav)

	url, err := s.BeginLogin(context.Background(), "")
	require.Error(t, err)
	assert.NotEmpty(t, url, "broker URL is returned so the caller can print it")
}

func TestLogoutClearsLocallyDespiteBackendFailure(t *testing.T) {
	backend := &fakeBackend{
		meFunc:    func(ctx context.Context) (*api.Identity, error) { return testIdentity, nil },
		logoutErr: errors.New("backend down"),
	}
	s := newTestStore(backend, nil)
	s.Restore(context.Background())
	require.Equal(t, StateAuthenticated, s.Current().State)

	s.Logout(context.Background())

	sess := s.Current()
	assert.Equal(t, StateUnauthenticated, sess.State)
	assert.Nil(t, sess.Identity)
	assert.True(t, backend.logoutCalled)
	assert.True(t, backend.clearCalled)
}
