package timesjobs

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsearch-engine/internal/domain"
	"jobsearch-engine/internal/scrape/types"
)

const listingHTML = `
<ul>
  <li class="clearfix job-bx wht-shd-bx">
    <h2><a title="Data Analyst" href="https://www.timesjobs.com/job-detail/data-analyst-tcs-1">Data Analyst</a></h2>
    <h3 class="joblist-comp-name">TCS</h3>
    <ul class="top-jd-dtl clearfix">
      <li class="experience"><span class="expwdth">2 - 5 yrs</span></li>
      <li class="location"><span class="locationsContainer">Bangalore, Chennai</span></li>
    </ul>
    <ul class="list-job-dtl clearfix"><li>Analyze business data and build dashboards.</li></ul>
  </li>
  <li class="clearfix job-bx wht-shd-bx">
    <h2><a title="Data Engineer" href="/job-detail/data-engineer-infosys-2">Data Engineer</a></h2>
    <h3 class="joblist-comp-name">Infosys</h3>
  </li>
  <li class="clearfix job-bx wht-shd-bx">
    <h2><a title="Promoted" href="#">Ad slot</a></h2>
  </li>
</ul>`

func TestFindCards(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(listingHTML))
	require.NoError(t, err)
	assert.Equal(t, 3, findCards(doc).Length())
}

func TestParseCard(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(listingHTML))
	require.NoError(t, err)
	cards := findCards(doc)

	first, ok := parseCard(cards.Eq(0))
	require.True(t, ok)
	assert.Equal(t, "Data Analyst", first.Title)
	assert.Equal(t, "TCS", first.Company)
	assert.Equal(t, "https://www.timesjobs.com/job-detail/data-analyst-tcs-1", first.ApplyURL)
	assert.Contains(t, first.Location, "Bangalore")
	assert.Contains(t, first.Experience, "2 - 5")

	second, ok := parseCard(cards.Eq(1))
	require.True(t, ok)
	assert.Equal(t, "Infosys", second.Company)
	assert.Equal(t, "/job-detail/data-engineer-infosys-2", second.ApplyURL)

	// no company means ad or teaser
	_, ok = parseCard(cards.Eq(2))
	assert.False(t, ok)
}

func TestSampleCandidates(t *testing.T) {
	cands := SampleCandidates(types.Query{Title: "Data Analyst", Location: "India"})
	require.Len(t, cands, 4)

	assert.Equal(t, "Data Analyst", cands[0].Title)
	for i, c := range cands {
		if i > 0 {
			assert.Equal(t, "Senior Data Analyst", c.Title)
		}
		assert.NotEmpty(t, c.Company)
		assert.NotEmpty(t, c.Salary)
		assert.Contains(t, c.ApplyURL, "timesjobs.com")
	}
}

func TestNameAndSource(t *testing.T) {
	s := New(Config{}, nil)
	assert.Equal(t, domain.SourceTimesJobs, s.Name())
}

func TestFetchFallsBackToSamples(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(Config{}, nil)
	res := s.Fetch(ctx, types.Query{Title: "Data Analyst", Location: "India"})

	assert.Equal(t, domain.SourceTimesJobs, res.Source)
	assert.NotEmpty(t, res.Candidates)
	assert.Equal(t, SampleCandidates(types.Query{Title: "Data Analyst", Location: "India"}), res.Candidates)
}
