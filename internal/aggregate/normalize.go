// Package aggregate turns heterogeneous, unreliable per-source extraction
// results into one ordered result list: normalize each candidate, drop
// duplicates across sources, interleave round-robin by source. Everything
// in here is a pure function of its input; no I/O happens at this stage.
package aggregate

import (
	"strings"

	"jobsearch-engine/internal/domain"
	"jobsearch-engine/internal/scrape/util"
)

// Placeholder values substituted for absent optional fields. These are
// deliberately generic; the normalizer never invents specifics.
const (
	DefaultCompany    = "Various Companies"
	DefaultLocation   = "India"
	DefaultExperience = "As per requirement"
	DefaultSalary     = "Not disclosed"
)

const defaultDescriptionMax = 200

// SourceResult is one source's ordered candidate list, in the order the
// extractor produced it.
type SourceResult struct {
	Source     string
	Candidates []domain.Candidate
}

// Rules parameterizes normalization and interleaving.
type Rules struct {
	// DescriptionMax bounds the description length in runes; longer text
	// is cut and suffixed with "...". Zero means the default of 200.
	DescriptionMax int

	// Origins maps a source to the base origin used to resolve relative
	// apply hrefs ("/jobs/123" -> "https://host/jobs/123").
	Origins map[string]string

	// Priority is the fixed source order for round-robin interleaving.
	Priority []string
}

// Normalize validates and defaults a single candidate. A candidate whose
// title is empty after trimming produces no record at all; that is a hard
// validity rule, not a warning. Every record returned satisfies the
// JobRecord invariants: non-empty title, absolute apply URL, source set.
func Normalize(c domain.Candidate, source string, r Rules) (domain.JobRecord, bool) {
	title := util.CleanText(c.Title)
	if title == "" {
		return domain.JobRecord{}, false
	}

	company := util.CleanText(c.Company)
	if company == "" {
		company = DefaultCompany
	}
	location := util.NormalizeLocation(c.Location)
	if location == "" {
		location = DefaultLocation
	}
	experience := util.CleanText(c.Experience)
	if experience == "" {
		experience = DefaultExperience
	}
	salary := util.CleanText(c.Salary)
	if salary == "" {
		salary = DefaultSalary
	}

	max := r.DescriptionMax
	if max <= 0 {
		max = defaultDescriptionMax
	}
	description := util.CleanText(c.Description)
	if runes := []rune(description); len(runes) > max {
		description = string(runes[:max]) + "..."
	}

	applyURL := strings.TrimSpace(c.ApplyURL)
	if applyURL == "#" {
		// the original scrapers used "#" as their no-link marker
		applyURL = ""
	}
	if strings.HasPrefix(applyURL, "/") {
		applyURL = util.ResolveAgainst(r.Origins[source], applyURL)
	}
	if applyURL == "" || !util.IsJobURL(applyURL) || !util.IsAbsoluteURL(applyURL) {
		applyURL = util.FallbackSearchURL(title, company, source)
	}

	return domain.JobRecord{
		Title:       title,
		Company:     company,
		Location:    location,
		Experience:  experience,
		Salary:      salary,
		Description: description,
		ApplyURL:    applyURL,
		Source:      source,
	}, true
}
