package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceSpansEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendAuthEvent(ctx, AuthEventData{Action: AuthActionRestore, Success: true, UserID: "u-1"}); err != nil {
		t.Fatalf("append auth event: %v", err)
	}
	if err := repo.AppendAPIRequest(ctx, APIRequestEventData{Method: "GET", Path: "/auth/me", LatencyMs: 12, Success: true}); err != nil {
		t.Fatalf("append api request: %v", err)
	}
	if err := repo.AppendProgressEvent(ctx, ProgressEventData{CompetenceID: "c-1", CompetenceNumber: 1, Action: ProgressActionStarted}); err != nil {
		t.Fatalf("append progress event: %v", err)
	}

	entries, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	// Newest first, sequence strictly decreasing across tables.
	wantKinds := []string{"progress", "request", "auth"}
	for i, e := range entries {
		if e.Kind != wantKinds[i] {
			t.Errorf("entry %d kind = %q, want %q", i, e.Kind, wantKinds[i])
		}
		if i > 0 && entries[i-1].Sequence <= e.Sequence {
			t.Errorf("sequence not decreasing: %d then %d", entries[i-1].Sequence, e.Sequence)
		}
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.AppendAuthEvent(ctx, AuthEventData{Action: AuthActionRestore, Success: true}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	entries, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}
