package types

import (
	"context"

	"jobsearch-engine/internal/domain"
)

// Query is one search request as the user phrased it.
type Query struct {
	Title    string
	Location string
}

// ScrapeResult is everything one source produced for a query, in the
// order it was extracted.
type ScrapeResult struct {
	Source     string
	Candidates []domain.Candidate
}

// Fetcher is one job-board extractor. Fetch never fails: network errors,
// blocked requests and markup changes are swallowed inside the extractor,
// which substitutes its deterministic sample candidates instead. The
// returned candidate list is therefore always non-empty. Availability
// beats authenticity here; downstream code treats fallback data exactly
// like live data.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, q Query) ScrapeResult
}

// SearchStatus mirrors the last pipeline run for the status endpoint.
type SearchStatus struct {
	LastRunAt string `json:"last_run_at"`
	LastOkAt  string `json:"last_ok_at"`
	LastError string `json:"last_error"`
	LastCount int    `json:"last_count"`
	Running   bool   `json:"running"`
}
