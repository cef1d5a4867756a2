package api

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/kdiallo/rianterm/internal/store"
)

// recordingTransport is a RoundTripper decorator that records every backend
// request as a journal event. Data-fetch failures degrade silently in the UI,
// so the journal is where they remain visible.
type recordingTransport struct {
	inner http.RoundTripper
	repo  store.EventRepo
}

// WithLogging installs journal recording on the client. A nil repo is a no-op.
func WithLogging(c *Client, repo store.EventRepo) *Client {
	if repo == nil {
		return c
	}
	inner := c.http.Transport
	if inner == nil {
		inner = http.DefaultTransport
	}
	c.http.Transport = &recordingTransport{inner: inner, repo: repo}
	return c
}

func (t *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.inner.RoundTrip(req)
	latencyMs := time.Since(start).Milliseconds()

	data := store.APIRequestEventData{
		Method:    req.Method,
		Path:      strings.TrimPrefix(req.URL.Path, "/api"),
		LatencyMs: latencyMs,
		Success:   err == nil && resp.StatusCode < 400,
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	} else if resp.StatusCode >= 400 {
		data.ErrorMessage = resp.Status
	}

	// Record the event but don't fail the request if recording fails.
	if logErr := t.repo.AppendAPIRequest(req.Context(), data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record request event: %v\n", logErr)
	}

	return resp, err
}
