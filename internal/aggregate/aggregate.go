package aggregate

import "jobsearch-engine/internal/domain"

// Aggregate runs the whole pipeline over per-source results given in
// source-invocation order: normalize each candidate (invalid ones are
// silently discarded), concatenate, dedup first-seen-wins, interleave
// round-robin. Pure function of its input; it cannot tell fallback data
// from live data and does not try to.
func Aggregate(results []SourceResult, rules Rules) []domain.JobRecord {
	var all []domain.JobRecord
	for _, res := range results {
		for _, c := range res.Candidates {
			if rec, ok := Normalize(c, res.Source, rules); ok {
				all = append(all, rec)
			}
		}
	}
	return Interleave(Dedup(all), rules.Priority)
}
