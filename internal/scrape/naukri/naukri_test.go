package naukri

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsearch-engine/internal/domain"
	"jobsearch-engine/internal/scrape/types"
	"jobsearch-engine/internal/scrape/util"
)

func TestFetchIsDeterministic(t *testing.T) {
	s := New()
	q := types.Query{Title: "Python Developer", Location: "India"}

	first := s.Fetch(context.Background(), q)
	second := s.Fetch(context.Background(), q)

	assert.Equal(t, domain.SourceNaukri, first.Source)
	assert.Equal(t, first, second)
	require.Len(t, first.Candidates, 6)
}

func TestSampleURLsLookLikePostings(t *testing.T) {
	for _, c := range SampleCandidates(types.Query{Title: "Python Developer"}) {
		assert.True(t, util.IsJobURL(c.ApplyURL), c.ApplyURL)
		assert.True(t, util.IsAbsoluteURL(c.ApplyURL), c.ApplyURL)
	}
}

func TestTitleSlug(t *testing.T) {
	assert.Equal(t, "python-developer", titleSlug(" Python Developer "))
	assert.Equal(t, "ui-ux-designer", titleSlug("UI/UX Designer"))
}
