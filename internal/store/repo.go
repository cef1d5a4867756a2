package store

import (
	"context"
	"time"
)

// Auth event actions.
const (
	AuthActionRestore       = "restore"
	AuthActionExchange      = "exchange"
	AuthActionLoginRedirect = "login_redirect"
	AuthActionLogout        = "logout"
)

// Progress event actions.
const (
	ProgressActionStarted       = "started"
	ProgressActionQuizSubmitted = "quiz_submitted"
)

// AuthEventData captures one observed session lifecycle outcome.
type AuthEventData struct {
	Action  string
	Success bool
	UserID  string
	Message string
}

// APIRequestEventData captures one backend request.
type APIRequestEventData struct {
	Method       string
	Path         string
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// ProgressEventData captures one curriculum action taken from this client.
type ProgressEventData struct {
	CompetenceID     string
	CompetenceNumber int
	Action           string
	Score            float64
	Passed           bool
}

// JournalEntry is the read model for the journal command: one event of any
// type, ordered by the global sequence.
type JournalEntry struct {
	Sequence  int64
	Timestamp time.Time
	Kind      string // "auth", "request" or "progress"
	Action    string
	Success   bool
	Detail    string
}

// EventRepo provides append and query access to the activity journal.
type EventRepo interface {
	// AppendAuthEvent records a session lifecycle outcome.
	AppendAuthEvent(ctx context.Context, data AuthEventData) error

	// AppendAPIRequest records a backend request.
	AppendAPIRequest(ctx context.Context, data APIRequestEventData) error

	// AppendProgressEvent records a curriculum action.
	AppendProgressEvent(ctx context.Context, data ProgressEventData) error

	// Recent returns the latest limit journal entries across all event
	// types, newest first.
	Recent(ctx context.Context, limit int) ([]JournalEntry, error)
}
