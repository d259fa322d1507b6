package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobsearch-engine/internal/domain"
)

func TestIsJobURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.com/jobs/123", true},
		{"https://example.com/job/data-analyst", true},
		{"https://example.com/careers/openings", true},
		{"https://www.timesjobs.com/job-detail/data-analyst-tcs", true},
		{"https://example.com/JobDetail.aspx?id=1", true},
		{"https://example.com/vacancy/12", true},
		{"https://example.com/about", false},
		{"https://example.com/company/acme", false},
		{"", false},
		{"   ", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, IsJobURL(tc.url), tc.url)
	}
}

func TestResolveAgainst(t *testing.T) {
	assert.Equal(t, "https://apna.co/jobs/1", ResolveAgainst("https://apna.co", "/jobs/1"))
	assert.Equal(t, "https://apna.co/jobs/1", ResolveAgainst("https://apna.co/", "/jobs/1"))
	assert.Equal(t, "https://other.com/x", ResolveAgainst("https://apna.co", "https://other.com/x"))
	assert.Equal(t, "", ResolveAgainst("https://apna.co", "  "))
}

func TestIsAbsoluteURL(t *testing.T) {
	assert.True(t, IsAbsoluteURL("https://example.com/x"))
	assert.True(t, IsAbsoluteURL("http://example.com"))
	assert.False(t, IsAbsoluteURL("/jobs/1"))
	assert.False(t, IsAbsoluteURL("example.com/jobs"))
	assert.False(t, IsAbsoluteURL(""))
}

func TestFallbackSearchURL(t *testing.T) {
	assert.Equal(t,
		"https://apna.co/jobs?search=Data%20Analyst&company=Acme%20Corp",
		FallbackSearchURL("Data Analyst", "Acme Corp", domain.SourceApna))

	assert.Equal(t,
		"https://www.timesjobs.com/candidate/job-search.html"+
			"?searchType=personalizedSearch&from=submit&txtKeywords=Data%20Analyst&txtLocation=India",
		FallbackSearchURL("Data Analyst", "Acme", domain.SourceTimesJobs))

	assert.Equal(t,
		"https://www.google.com/search?q=Data+Analyst+jobs+at+Acme+Corp",
		FallbackSearchURL("Data Analyst", "Acme Corp", domain.SourceLinkedIn))
}
