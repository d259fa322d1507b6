package scrape

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"jobsearch-engine/internal/aggregate"
	"jobsearch-engine/internal/config"
	"jobsearch-engine/internal/domain"
	"jobsearch-engine/internal/events"
	"jobsearch-engine/internal/scrape/apna"
	"jobsearch-engine/internal/scrape/linkedin"
	"jobsearch-engine/internal/scrape/naukri"
	"jobsearch-engine/internal/scrape/timesjobs"
	"jobsearch-engine/internal/scrape/types"
	"jobsearch-engine/internal/scrape/util"
)

// Priority is the fixed source order, used both for invocation and for
// round-robin interleaving of the merged results.
var Priority = []string{
	domain.SourceTimesJobs,
	domain.SourceLinkedIn,
	domain.SourceApna,
	domain.SourceNaukri,
}

// Origins maps each source to the base origin relative apply hrefs are
// resolved against.
func Origins() map[string]string {
	return map[string]string{
		domain.SourceTimesJobs: timesjobs.BaseURL,
		domain.SourceLinkedIn:  linkedin.BaseURL,
		domain.SourceApna:      apna.BaseURL,
		domain.SourceNaukri:    naukri.BaseURL,
	}
}

// Runner drives one search: invoke each enabled extractor, hand the
// collected per-source results to the aggregator. Sequential by default
// with a courtesy delay between boards; parallel fan-out is opt-in and
// leaves pacing to the per-host limiter.
type Runner struct {
	Fetchers        []types.Fetcher
	Rules           aggregate.Rules
	DefaultLocation string
	CourtesyDelay   time.Duration
	Parallel        bool

	// Notify receives structured progress events (events.MakeEvent
	// payloads). May be nil.
	Notify func(string)
}

// NewRunner wires a Runner from config: enabled sources in priority
// order, one shared per-host limiter across all of them.
func NewRunner(cfg config.Config) *Runner {
	limiter := util.NewHostLimiter(cfg.Search.PerHostRPS, cfg.Search.Burst)
	timeout := time.Duration(cfg.Search.RequestTimeoutSeconds) * time.Second

	var fetchers []types.Fetcher
	if cfg.Sources.TimesJobs.Enabled {
		fetchers = append(fetchers, timesjobs.New(timesjobs.Config{
			Limit: cfg.Search.PerSourceLimit, Timeout: timeout,
		}, limiter))
	}
	if cfg.Sources.LinkedIn.Enabled {
		fetchers = append(fetchers, linkedin.New(linkedin.Config{
			Limit:          cfg.Search.PerSourceLimit,
			Timeout:        timeout,
			KeyringAccount: cfg.Sources.LinkedIn.KeyringAccount,
		}, limiter))
	}
	if cfg.Sources.Apna.Enabled {
		fetchers = append(fetchers, apna.New(apna.Config{
			Limit: cfg.Search.PerSourceLimit, Timeout: timeout,
		}, limiter))
	}
	if cfg.Sources.Naukri.Enabled {
		fetchers = append(fetchers, naukri.New())
	}

	return &Runner{
		Fetchers: fetchers,
		Rules: aggregate.Rules{
			DescriptionMax: cfg.Search.DescriptionMax,
			Origins:        Origins(),
			Priority:       Priority,
		},
		DefaultLocation: cfg.Search.DefaultLocation,
		CourtesyDelay:   time.Duration(cfg.Search.CourtesyDelaySeconds) * time.Second,
		Parallel:        cfg.Search.Parallel,
	}
}

// Run executes the full pipeline for one query and returns the merged,
// deduplicated, interleaved records. An empty result means no source
// produced a usable record, which callers report as "no jobs found".
func (r *Runner) Run(ctx context.Context, q types.Query) ([]domain.JobRecord, error) {
	q.Title = strings.TrimSpace(q.Title)
	if q.Title == "" {
		return nil, errors.New("job title is required")
	}
	if strings.TrimSpace(q.Location) == "" {
		q.Location = r.DefaultLocation
	}

	runID := uuid.NewString()
	r.notify(events.MakeEvent(runID, "search_started", 1, map[string]any{
		"title": q.Title, "location": q.Location, "sources": len(r.Fetchers),
	}))

	results := make([]types.ScrapeResult, len(r.Fetchers))
	if r.Parallel {
		var g errgroup.Group
		for i, f := range r.Fetchers {
			i, f := i, f
			g.Go(func() error {
				results[i] = r.fetchOne(ctx, f, q, runID)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, f := range r.Fetchers {
			if i > 0 && r.CourtesyDelay > 0 {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(r.CourtesyDelay):
				}
			}
			results[i] = r.fetchOne(ctx, f, q, runID)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in := make([]aggregate.SourceResult, 0, len(results))
	for _, res := range results {
		in = append(in, aggregate.SourceResult{Source: res.Source, Candidates: res.Candidates})
	}
	merged := aggregate.Aggregate(in, r.Rules)

	r.notify(events.MakeEvent(runID, "search_done", 1, map[string]any{
		"count": len(merged),
	}))
	return merged, nil
}

func (r *Runner) fetchOne(ctx context.Context, f types.Fetcher, q types.Query, runID string) types.ScrapeResult {
	log.Printf("[%s] searching for %q in %q", f.Name(), q.Title, q.Location)
	res := f.Fetch(ctx, q)
	log.Printf("[%s] %d candidates", f.Name(), len(res.Candidates))

	r.notify(events.MakeEvent(runID, "source_done", 1, map[string]any{
		"source": res.Source, "candidates": len(res.Candidates),
	}))
	return res
}

func (r *Runner) notify(evt string) {
	if r.Notify != nil {
		r.Notify(evt)
	}
}
