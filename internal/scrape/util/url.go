package util

import (
	"net/url"
	"strings"

	"jobsearch-engine/internal/domain"
)

// Path fragments that mark a URL as an actual job posting. Singular and
// plural forms both occur in the wild, as do the hyphen/underscore
// spellings of "job detail".
var jobURLFragments = []string{
	"/job/", "/jobs/", "/career/", "/careers/",
	"/vacancy/", "/vacancies/", "/opening/", "/openings/",
	"/position/", "/positions/",
	"job-detail", "job_detail", "jobdetail",
}

// IsJobURL reports whether a candidate URL looks like a job posting.
// It is a heuristic: false negatives are expected and handled by falling
// back to a generated search URL.
func IsJobURL(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}
	low := strings.ToLower(raw)
	for _, frag := range jobURLFragments {
		if strings.Contains(low, frag) {
			return true
		}
	}
	return false
}

// ResolveAgainst turns a relative href into an absolute URL on the given
// origin. Absolute hrefs pass through untouched.
func ResolveAgainst(origin, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "/") {
		return strings.TrimSuffix(origin, "/") + href
	}
	return href
}

// IsAbsoluteURL reports whether raw parses as a URL with scheme and host.
func IsAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// FallbackSearchURL builds a deterministic search URL for a posting whose
// scraped link was missing or did not look like a job page. Apna and
// TimesJobs get their own search endpoints; everything else lands on a
// Google query for the title and company.
func FallbackSearchURL(title, company, source string) string {
	switch source {
	case domain.SourceApna:
		return "https://apna.co/jobs?search=" + escapeSpaces(title, "%20") +
			"&company=" + escapeSpaces(company, "%20")
	case domain.SourceTimesJobs:
		return "https://www.timesjobs.com/candidate/job-search.html" +
			"?searchType=personalizedSearch&from=submit" +
			"&txtKeywords=" + escapeSpaces(title, "%20") +
			"&txtLocation=India"
	default:
		return "https://www.google.com/search?q=" + escapeSpaces(title, "+") +
			"+jobs+at+" + escapeSpaces(company, "+")
	}
}

func escapeSpaces(s, with string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", with)
}
