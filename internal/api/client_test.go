package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Config{
		BaseURL: server.URL,
		JarPath: filepath.Join(t.TempDir(), "cookies.json"),
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)
	return client, server
}

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
}

func TestMe(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/auth/me", r.URL.Path)
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			assert.NotEmpty(t, r.Header.Get("X-Client-ID"))
			_ = json.NewEncoder(w).Encode(Identity{ID: "u-1", Email: "a@b.c", Name: "Aminata"})
		}))

		id, err := client.Me(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "u-1", id.ID)
		assert.Equal(t, "Aminata", id.Name)
	})

	t.Run("no session", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Not authenticated"}`))
		}))

		_, err := client.Me(context.Background())
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestProcessSessionEstablishesCookie(t *testing.T) {
	jarPath := filepath.Join(t.TempDir(), "cookies.json")

	var sawCookie string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/process-session":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "tok-123", body["session_id"])

			http.SetCookie(w, &http.Cookie{
				Name:    "session_token",
				Value:   "sess-abc",
				Path:    "/",
				Expires: time.Now().Add(time.Hour),
			})
			_ = json.NewEncoder(w).Encode(map[string]any{
				"user":          Identity{ID: "u-1", Name: "Aminata"},
				"session_token": "sess-abc",
			})
		case "/api/auth/me":
			if c, err := r.Cookie("session_token"); err == nil {
				sawCookie = c.Value
			}
			_ = json.NewEncoder(w).Encode(Identity{ID: "u-1"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, JarPath: jarPath})
	require.NoError(t, err)

	id, err := client.ProcessSession(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "u-1", id.ID)

	// The cookie set during the exchange rides along on the next request.
	_, err = client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sess-abc", sawCookie)

	// And survives a process restart via the persisted jar.
	reopened, err := New(Config{BaseURL: server.URL, JarPath: jarPath})
	require.NoError(t, err)
	sawCookie = ""
	_, err = reopened.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sess-abc", sawCookie)

	// ClearCredential drops it.
	require.NoError(t, reopened.ClearCredential())
	sawCookie = ""
	_, err = reopened.Me(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sawCookie)
}

func TestStatusErrorCarriesDetail(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Invalid session ID"}`))
	}))

	_, err := client.ProcessSession(context.Background(), "bad-token")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.Status)
	assert.Equal(t, "Invalid session ID", statusErr.Detail)
}

func TestCompetenceNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Competence not found"}`))
	}))

	_, err := client.Competence(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitQuiz(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quiz/c-1/submit", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var answers []int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&answers))
		assert.Equal(t, []int{0, 2, 1}, answers)

		_ = json.NewEncoder(w).Encode(QuizResult{Score: 66.7, Passed: false})
	}))

	res, err := client.SubmitQuiz(context.Background(), "c-1", []int{0, 2, 1})
	require.NoError(t, err)
	assert.InDelta(t, 66.7, res.Score, 1e-9)
	assert.False(t, res.Passed)
}

func TestWorkshopChatEscapesMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/workshop/ws-1/chat", r.URL.Path)
		assert.Equal(t, "how does a & b work?", r.URL.Query().Get("message"))
		_ = json.NewEncoder(w).Encode(WorkshopReply{Response: "like this"})
	}))

	reply, err := client.WorkshopChat(context.Background(), "ws-1", "how does a & b work?")
	require.NoError(t, err)
	assert.Equal(t, "like this", reply.Response)
}

func TestCompetencesList(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/competences", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]Competence{
			{ID: "c-1", Number: 1, Title: "Foundations"},
			{ID: "c-2", Number: 2, Title: "Data Modelling"},
		})
	}))

	list, err := client.Competences(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Foundations", list[0].Title)
}

func TestDashboard(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dashboard", r.URL.Path)
		_ = json.NewEncoder(w).Encode(DashboardData{
			User:                 Identity{ID: "u-1", Name: "Aminata"},
			OverallProgress:      33.3,
			TotalCompetences:     3,
			CompletedCompetences: 1,
			CertificatesEarned:   1,
		})
	}))

	data, err := client.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u-1", data.User.ID)
	assert.Equal(t, 3, data.TotalCompetences)
	assert.InDelta(t, 33.3, data.OverallProgress, 0.01)
}
