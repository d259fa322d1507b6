package apna

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsearch-engine/internal/scrape/types"
)

const listingHTML = `
<div>
  <div class="job-card">
    <h2><a href="https://apna.co/job/telecaller-zomato-1">Telecaller</a></h2>
    <div class="company-name">Zomato</div>
    <div class="location">Gurgaon</div>
    <div class="salary">₹15k - ₹20k per month</div>
    <div class="description">Handle inbound customer calls.</div>
  </div>
  <div class="job-card">
    <h3>Delivery Executive</h3>
    <a href="/about">About us</a>
    <a href="/job/delivery-executive-swiggy-2"><span class="apply-icon"></span></a>
  </div>
  <div class="job-card">
    <div class="company-name">Ghost Corp</div>
  </div>
</div>`

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
	assert.Equal(t, "Telecaller", first.Title)
	assert.Equal(t, "Zomato", first.Company)
	assert.Equal(t, "Gurgaon", first.Location)
	assert.Equal(t, "https://apna.co/job/telecaller-zomato-1", first.ApplyURL)

	// bare-text title, link recovered from a job-looking anchor
	second, ok := parseCard(cards.Eq(1))
	require.True(t, ok)
	assert.Equal(t, "Delivery Executive", second.Title)
	assert.Equal(t, "/job/delivery-executive-swiggy-2", second.ApplyURL)

	_, ok = parseCard(cards.Eq(2))
	assert.False(t, ok)
}

func TestTitleSlug(t *testing.T) {
	assert.Equal(t, "data-analyst", titleSlug(" Data Analyst "))
	assert.Equal(t, "telecaller", titleSlug("Telecaller"))
}

func TestSampleCandidates(t *testing.T) {
	cands := SampleCandidates(types.Query{Title: "Telecaller"})
	require.Len(t, cands, 6)
	for _, c := range cands {
		assert.NotEmpty(t, c.Title)
		assert.NotEmpty(t, c.Company)
	}
}
