package progress

import (
	"testing"

	"github.com/kdiallo/rianterm/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog(ids ...string) []api.Competence {
	comps := make([]api.Competence, len(ids))
	for i, id := range ids {
		comps[i] = api.Competence{ID: id}
	}
	return comps
}

func TestSummarizeEmptyCatalog(t *testing.T) {
	s := Summarize(nil, nil)
	assert.Equal(t, Summary{}, s)
	assert.Zero(t, s.OverallProgress)
}

func TestSummarizeNoRecords(t *testing.T) {
	s := Summarize(catalog("c1", "c2", "c3"), nil)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 3, s.NotStarted)
	assert.Zero(t, s.Completed)
	assert.Zero(t, s.InProgress)
	assert.Zero(t, s.OverallProgress)
}

func TestSummarizeMixed(t *testing.T) {
	records := []api.ProgressRecord{
		{CompetenceID: "c1", Status: api.StatusCompleted, CurrentScore: 100},
		{CompetenceID: "c2", Status: api.StatusInProgress, CurrentScore: 40},
	}

	s := Summarize(catalog("c1", "c2", "c3"), records)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Completed)
	assert.Equal(t, 1, s.InProgress)
	assert.Equal(t, 1, s.NotStarted)
	assert.Equal(t, 1, s.Certificates)

	// Mean over the whole catalog, absent records contributing zero.
	assert.InDelta(t, (100.0+40.0)/3.0, s.OverallProgress, 1e-9)
}

func TestSummarizeCountsAlwaysCoverCatalog(t *testing.T) {
	records := []api.ProgressRecord{
		{CompetenceID: "c2", Status: api.StatusCompleted, CurrentScore: 100},
		{CompetenceID: "missing", Status: api.StatusCompleted, CurrentScore: 100},
		{CompetenceID: "c4", Status: "weird-status", CurrentScore: 10},
	}

	s := Summarize(catalog("c1", "c2", "c3", "c4"), records)

	// A record for a competence no longer in the catalog is ignored, and
	// an unknown status falls back to not started.
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, s.Total, s.Completed+s.InProgress+s.NotStarted)
	assert.Equal(t, 1, s.Completed)
	assert.Equal(t, 3, s.NotStarted)
	assert.InDelta(t, (100.0+10.0)/4.0, s.OverallProgress, 1e-9)
}

func TestLookup(t *testing.T) {
	records := []api.ProgressRecord{
		{CompetenceID: "c1", CurrentScore: 80},
		{CompetenceID: "c2", CurrentScore: 55},
	}

	rec := Lookup(records, "c2")
	require.NotNil(t, rec)
	assert.Equal(t, 55.0, rec.CurrentScore)

	assert.Nil(t, Lookup(records, "c9"))
	assert.Nil(t, Lookup(nil, "c1"))
}
