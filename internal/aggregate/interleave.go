package aggregate

import "jobsearch-engine/internal/domain"

// Interleave merges records from multiple sources round-robin: round i
// emits the i-th record of every source that still has one, visiting
// sources in the given priority order each round. Per-source relative
// order is preserved. Sources missing from priority are visited after the
// prioritized ones, in order of first appearance in the input.
func Interleave(in []domain.JobRecord, priority []string) []domain.JobRecord {
	if len(in) == 0 {
		return nil
	}

	bySource := make(map[string][]domain.JobRecord)
	var appeared []string
	for _, r := range in {
		if _, ok := bySource[r.Source]; !ok {
			appeared = append(appeared, r.Source)
		}
		bySource[r.Source] = append(bySource[r.Source], r)
	}

	inPriority := make(map[string]bool, len(priority))
	var order []string
	for _, s := range priority {
		inPriority[s] = true
		if _, ok := bySource[s]; ok {
			order = append(order, s)
		}
	}
	for _, s := range appeared {
		if !inPriority[s] {
			order = append(order, s)
		}
	}

	longest := 0
	for _, recs := range bySource {
		if len(recs) > longest {
			longest = len(recs)
		}
	}

	out := make([]domain.JobRecord, 0, len(in))
	for i := 0; i < longest; i++ {
		for _, s := range order {
			if recs := bySource[s]; i < len(recs) {
				out = append(out, recs[i])
			}
		}
	}
	return out
}
