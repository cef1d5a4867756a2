// Package progress derives dashboard summaries from per-competence progress
// records and the competence catalog.
package progress

import "github.com/kdiallo/rianterm/internal/api"

// Summary is the derived dashboard view. Never stored; recomputed on every
// fetch. Completed + InProgress + NotStarted always equals Total, and
// OverallProgress stays in [0,100].
type Summary struct {
	Total           int
	Completed       int
	InProgress      int
	NotStarted      int
	OverallProgress float64
	Certificates    int
}

// Summarize computes the dashboard summary from the full catalog and the
// user's progress records. Records are keyed by competence id; a competence
// without a record counts as not started with score 0. OverallProgress is the
// arithmetic mean of per-competence scores. Deterministic, and safe on an
// empty catalog.
func Summarize(catalog []api.Competence, records []api.ProgressRecord) Summary {
	byID := make(map[string]*api.ProgressRecord, len(records))
	for i := range records {
		byID[records[i].CompetenceID] = &records[i]
	}

	var s Summary
	s.Total = len(catalog)

	var scoreSum float64
	for _, comp := range catalog {
		rec := byID[comp.ID]
		if rec == nil {
			s.NotStarted++
			continue
		}
		scoreSum += rec.CurrentScore
		switch rec.Status {
		case api.StatusCompleted:
			s.Completed++
			s.Certificates++
		case api.StatusInProgress:
			s.InProgress++
		default:
			s.NotStarted++
		}
	}

	if s.Total > 0 {
		s.OverallProgress = scoreSum / float64(s.Total)
	}
	return s
}

// Lookup returns the progress record for a competence, or nil when the user
// has not started it.
func Lookup(records []api.ProgressRecord, competenceID string) *api.ProgressRecord {
	for i := range records {
		if records[i].CompetenceID == competenceID {
			return &records[i]
		}
	}
	return nil
}
