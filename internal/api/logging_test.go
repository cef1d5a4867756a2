package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/kdiallo/rianterm/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedEvents struct {
	requests []store.APIRequestEventData
}

func (r *recordedEvents) AppendAuthEvent(ctx context.Context, data store.AuthEventData) error {
	return nil
}

func (r *recordedEvents) AppendAPIRequest(ctx context.Context, data store.APIRequestEventData) error {
	r.requests = append(r.requests, data)
	return nil
}

func (r *recordedEvents) AppendProgressEvent(ctx context.Context, data store.ProgressEventData) error {
	return nil
}

func (r *recordedEvents) Recent(ctx context.Context, limit int) ([]store.JournalEntry, error) {
	return nil, nil
}

func TestWithLoggingRecordsRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/me":
			_, _ = w.Write([]byte(`{"id":"u-1"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"nope"}`))
		}
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, JarPath: filepath.Join(t.TempDir(), "jar.json")})
	require.NoError(t, err)

	events := &recordedEvents{}
	client = WithLogging(client, events)

	_, err = client.Me(context.Background())
	require.NoError(t, err)

	_, err = client.Competence(context.Background(), "missing")
	require.Error(t, err)

	require.Len(t, events.requests, 2)

	ok := events.requests[0]
	assert.Equal(t, "GET", ok.Method)
	assert.Equal(t, "/auth/me", ok.Path, "the /api prefix is stripped")
	assert.True(t, ok.Success)
	assert.Empty(t, ok.ErrorMessage)

	failed := events.requests[1]
	assert.Equal(t, "/competences/missing", failed.Path)
	assert.False(t, failed.Success)
	assert.NotEmpty(t, failed.ErrorMessage)
}

func TestWithLoggingNilRepoIsNoop(t *testing.T) {
	client, err := New(Config{BaseURL: "http://localhost:1"})
	require.NoError(t, err)
	assert.Same(t, client, WithLogging(client, nil))
}
