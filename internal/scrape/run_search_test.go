package scrape

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsearch-engine/internal/aggregate"
	"jobsearch-engine/internal/config"
	"jobsearch-engine/internal/domain"
	"jobsearch-engine/internal/events"
	"jobsearch-engine/internal/scrape/types"
)

type fakeFetcher struct {
	name  string
	got   types.Query
	cands []domain.Candidate
}

func (f *fakeFetcher) Name() string { return f.name }

func (f *fakeFetcher) Fetch(_ context.Context, q types.Query) types.ScrapeResult {
	f.got = q
	return types.ScrapeResult{Source: f.name, Candidates: f.cands}
}

func testRules() aggregate.Rules {
	return aggregate.Rules{Origins: Origins(), Priority: Priority}
}

func TestRunRequiresTitle(t *testing.T) {
	r := &Runner{Rules: testRules()}
	_, err := r.Run(context.Background(), types.Query{Title: "   "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job title is required")
}

func TestRunDefaultsLocation(t *testing.T) {
	f := &fakeFetcher{name: domain.SourceTimesJobs}
	r := &Runner{
		Fetchers:        []types.Fetcher{f},
		Rules:           testRules(),
		DefaultLocation: "India",
	}
	_, err := r.Run(context.Background(), types.Query{Title: "Dev"})
	require.NoError(t, err)
	assert.Equal(t, "India", f.got.Location)
}

func TestRunMergesAcrossSources(t *testing.T) {
	tj := &fakeFetcher{name: domain.SourceTimesJobs, cands: []domain.Candidate{
		{Title: "Data Analyst", Company: "TCS"},
		{Title: "Data Engineer", Company: "Infosys"},
	}}
	li := &fakeFetcher{name: domain.SourceLinkedIn, cands: []domain.Candidate{
		{Title: "DATA ANALYST", Company: "tcs"},
		{Title: "ML Engineer", Company: "Google"},
	}}
	r := &Runner{
		Fetchers:        []types.Fetcher{tj, li},
		Rules:           testRules(),
		DefaultLocation: "India",
	}

	out, err := r.Run(context.Background(), types.Query{Title: "Data Analyst"})
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "Data Analyst", out[0].Title)
	assert.Equal(t, domain.SourceTimesJobs, out[0].Source)
	assert.Equal(t, "ML Engineer", out[1].Title)
	assert.Equal(t, "Data Engineer", out[2].Title)
}

func TestRunParallelPreservesSourceOrder(t *testing.T) {
	tj := &fakeFetcher{name: domain.SourceTimesJobs, cands: []domain.Candidate{{Title: "A"}}}
	li := &fakeFetcher{name: domain.SourceLinkedIn, cands: []domain.Candidate{{Title: "B"}}}
	r := &Runner{
		Fetchers:        []types.Fetcher{tj, li},
		Rules:           testRules(),
		DefaultLocation: "India",
		Parallel:        true,
	}

	out, err := r.Run(context.Background(), types.Query{Title: "Dev"})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, domain.SourceTimesJobs, out[0].Source)
	assert.Equal(t, domain.SourceLinkedIn, out[1].Source)
}

func TestRunEmitsEvents(t *testing.T) {
	f := &fakeFetcher{name: domain.SourceTimesJobs, cands: []domain.Candidate{{Title: "Dev"}}}
	var seen []events.Event
	r := &Runner{
		Fetchers:        []types.Fetcher{f},
		Rules:           testRules(),
		DefaultLocation: "India",
		Notify: func(raw string) {
			var e events.Event
			require.NoError(t, json.Unmarshal([]byte(raw), &e))
			seen = append(seen, e)
		},
	}

	_, err := r.Run(context.Background(), types.Query{Title: "Dev"})
	require.NoError(t, err)
	require.Len(t, seen, 3)
	assert.Equal(t, "search_started", seen[0].Type)
	assert.Equal(t, "source_done", seen[1].Type)
	assert.Equal(t, "search_done", seen[2].Type)

	// all events of one run share the run id
	assert.NotEmpty(t, seen[0].RunID)
	assert.Equal(t, seen[0].RunID, seen[1].RunID)
	assert.Equal(t, seen[0].RunID, seen[2].RunID)
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &fakeFetcher{name: domain.SourceTimesJobs}
	r := &Runner{Fetchers: []types.Fetcher{f}, Rules: testRules(), DefaultLocation: "India"}

	_, err := r.Run(ctx, types.Query{Title: "Dev"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRunnerEnabledSources(t *testing.T) {
	cfg := config.Default()
	r := NewRunner(cfg)
	require.Len(t, r.Fetchers, 2)
	assert.Equal(t, domain.SourceTimesJobs, r.Fetchers[0].Name())
	assert.Equal(t, domain.SourceLinkedIn, r.Fetchers[1].Name())

	cfg.Sources.Apna.Enabled = true
	cfg.Sources.Naukri.Enabled = true
	r = NewRunner(cfg)
	require.Len(t, r.Fetchers, 4)
	assert.Equal(t, domain.SourceNaukri, r.Fetchers[3].Name())
}
