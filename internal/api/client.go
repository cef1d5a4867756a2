package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultTimeout = 15 * time.Second

// Config holds API client configuration.
type Config struct {
	// BaseURL is the backend root, e.g. "https://portal.example.org".
	// The "/api" prefix is appended per request.
	BaseURL string

	// JarPath is the cookie jar file. Empty disables persistence and the
	// session credential lives only for the process lifetime.
	JarPath string

	// Timeout bounds a single request. Default: 15s.
	Timeout time.Duration
}

// Client is a typed HTTP client for the portal backend. The session
// credential is a cookie set by the backend during the token exchange and
// carried automatically by the jar on every subsequent request.
type Client struct {
	base     *url.URL
	http     *http.Client
	jar      *fileJar
	clientID string
}

// New creates a Client for the given configuration.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("api base URL is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	jar, err := newFileJar(cfg.JarPath)
	if err != nil {
		return nil, fmt.Errorf("open cookie jar: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		base:     base,
		http:     &http.Client{Jar: jar, Timeout: timeout},
		jar:      jar,
		clientID: uuid.NewString(),
	}, nil
}

// ClearCredential drops the persisted session cookie. Called on logout so a
// dead session never outlives the local state reset.
func (c *Client) ClearCredential() error {
	return c.jar.Clear()
}

// Me restores the current session from the ambient credential.
// A missing or expired session surfaces as ErrUnauthorized.
func (c *Client) Me(ctx context.Context) (*Identity, error) {
	var id Identity
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

// processSessionResponse is the exchange response envelope.
type processSessionResponse struct {
	User         Identity `json:"user"`
	SessionToken string   `json:"session_token"`
}

// ProcessSession trades a one-time token for an established session. The
// backend sets the session cookie on success; the jar persists it. A consumed
// or invalid token fails at the backend and is returned as a StatusError.
func (c *Client) ProcessSession(ctx context.Context, token string) (*Identity, error) {
	body := map[string]string{"session_id": token}
	var resp processSessionResponse
	if err := c.do(ctx, http.MethodPost, "/auth/process-session", body, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Logout terminates the backend session. The local credential is cleared by
// the caller regardless of the outcome here.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// Dashboard fetches the server-side aggregated summary.
func (c *Client) Dashboard(ctx context.Context) (*DashboardData, error) {
	var d DashboardData
	if err := c.do(ctx, http.MethodGet, "/dashboard", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Competences fetches the full catalog, ordered by competence number.
func (c *Client) Competences(ctx context.Context) ([]Competence, error) {
	var list []Competence
	if err := c.do(ctx, http.MethodGet, "/competences", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Competence fetches a single catalog entry.
func (c *Client) Competence(ctx context.Context, id string) (*Competence, error) {
	var comp Competence
	if err := c.do(ctx, http.MethodGet, "/competences/"+url.PathEscape(id), nil, &comp); err != nil {
		return nil, err
	}
	return &comp, nil
}

// Progress fetches the current user's progress records across all
// competences. Competences never started have no record.
func (c *Client) Progress(ctx context.Context) ([]ProgressRecord, error) {
	var list []ProgressRecord
	if err := c.do(ctx, http.MethodGet, "/progress", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// StartCompetence creates (or returns the existing) progress record for a
// competence. Idempotent on the backend.
func (c *Client) StartCompetence(ctx context.Context, competenceID string) (*ProgressRecord, error) {
	var rec ProgressRecord
	path := "/progress/start/" + url.PathEscape(competenceID)
	if err := c.do(ctx, http.MethodPost, path, nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// QuizQuestions fetches the quiz for a competence. An empty slice means no
// quiz exists; callers only need existence plus the prompts.
func (c *Client) QuizQuestions(ctx context.Context, competenceID string) ([]QuizQuestion, error) {
	var list []QuizQuestion
	path := "/quiz/" + url.PathEscape(competenceID) + "/questions"
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SubmitQuiz submits answers (option indexes, question order) and returns the
// server-graded result.
func (c *Client) SubmitQuiz(ctx context.Context, competenceID string, answers []int) (*QuizResult, error) {
	var res QuizResult
	path := "/quiz/" + url.PathEscape(competenceID) + "/submit"
	if err := c.do(ctx, http.MethodPost, path, answers, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// StartWorkshop opens an AI workshop conversation for a competence.
func (c *Client) StartWorkshop(ctx context.Context, competenceID string) (*WorkshopSession, error) {
	var ws WorkshopSession
	path := "/workshop/start/" + url.PathEscape(competenceID)
	if err := c.do(ctx, http.MethodPost, path, nil, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

// WorkshopChat sends one user message and returns the mentor's reply.
func (c *Client) WorkshopChat(ctx context.Context, sessionID, message string) (*WorkshopReply, error) {
	var reply WorkshopReply
	path := "/workshop/" + url.PathEscape(sessionID) + "/chat?message=" + url.QueryEscape(message)
	if err := c.do(ctx, http.MethodPost, path, nil, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// InitData seeds the curriculum. Idempotent: the backend refuses to reseed.
func (c *Client) InitData(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/init-data", nil, nil)
}

// errorDetail is the backend's error envelope.
type errorDetail struct {
	Detail string `json:"detail"`
}

// do executes one request against the /api prefix, encoding body as JSON when
// non-nil and decoding the response into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+"/api"+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Client-ID", c.clientID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError maps a failed response to a sentinel or StatusError.
func (c *Client) statusError(resp *http.Response) error {
	var detail errorDetail
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	json.Unmarshal(data, &detail)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return &StatusError{Status: resp.StatusCode, Detail: detail.Detail}
}
