package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/kdiallo/rianterm/ent"
	"github.com/kdiallo/rianterm/ent/apirequestevent"
	"github.com/kdiallo/rianterm/ent/authevent"
	"github.com/kdiallo/rianterm/ent/progressevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAuthEvent(ctx context.Context, data AuthEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AuthEvent.Create().
		SetSequence(seqNum).
		SetAction(data.Action).
		SetSuccess(data.Success).
		SetUserID(data.UserID).
		SetMessage(data.Message).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save auth event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAPIRequest(ctx context.Context, data APIRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.APIRequestEvent.Create().
		SetSequence(seqNum).
		SetMethod(data.Method).
		SetPath(data.Path).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save api request event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendProgressEvent(ctx context.Context, data ProgressEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ProgressEvent.Create().
		SetSequence(seqNum).
		SetCompetenceID(data.CompetenceID).
		SetCompetenceNumber(data.CompetenceNumber).
		SetAction(data.Action).
		SetScore(data.Score).
		SetPassed(data.Passed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save progress event: %w", err)
	}
	return nil
}

// Recent merges the newest entries of each event table and returns them
// ordered by sequence, newest first. Each table is queried with the same
// limit so the merged slice is complete before truncation.
func (r *eventRepo) Recent(ctx context.Context, limit int) ([]JournalEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	var entries []JournalEntry

	auths, err := r.client.AuthEvent.Query().
		Order(ent.Desc(authevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query auth events: %w", err)
	}
	for _, e := range auths {
		detail := e.UserID
		if e.Message != "" {
			detail = e.Message
		}
		entries = append(entries, JournalEntry{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			Kind:      "auth",
			Action:    e.Action,
			Success:   e.Success,
			Detail:    detail,
		})
	}

	reqs, err := r.client.APIRequestEvent.Query().
		Order(ent.Desc(apirequestevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query api request events: %w", err)
	}
	for _, e := range reqs {
		detail := fmt.Sprintf("%s %s (%dms)", e.Method, e.Path, e.LatencyMs)
		if e.ErrorMessage != "" {
			detail += ": " + e.ErrorMessage
		}
		entries = append(entries, JournalEntry{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			Kind:      "request",
			Action:    e.Method,
			Success:   e.Success,
			Detail:    detail,
		})
	}

	progs, err := r.client.ProgressEvent.Query().
		Order(ent.Desc(progressevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query progress events: %w", err)
	}
	for _, e := range progs {
		detail := fmt.Sprintf("competence %d", e.CompetenceNumber)
		if e.Action == ProgressActionQuizSubmitted {
			detail = fmt.Sprintf("competence %d, score %.0f%%", e.CompetenceNumber, e.Score)
		}
		entries = append(entries, JournalEntry{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			Kind:      "progress",
			Action:    e.Action,
			Success:   true,
			Detail:    detail,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Sequence > entries[j].Sequence
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
