package aggregate

import (
	"strings"

	"jobsearch-engine/internal/domain"
)

type dedupKey struct {
	title   string
	company string
}

func keyFor(r domain.JobRecord) dedupKey {
	return dedupKey{
		title:   strings.ToLower(strings.TrimSpace(r.Title)),
		company: strings.ToLower(strings.TrimSpace(r.Company)),
	}
}

// Dedup collapses records that share the same (title, company) pair,
// case- and whitespace-insensitively. First seen wins: the earliest record
// in input order is kept unchanged, later ones are dropped. Relative order
// of survivors is preserved, which the interleaver depends on.
func Dedup(in []domain.JobRecord) []domain.JobRecord {
	seen := make(map[dedupKey]bool, len(in))
	out := make([]domain.JobRecord, 0, len(in))
	for _, r := range in {
		k := keyFor(r)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	return out
}
