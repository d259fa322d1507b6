package httpapi

import (
	"context"
	"sync/atomic"

	"jobsearch-engine/internal/config"
	"jobsearch-engine/internal/domain"
	"jobsearch-engine/internal/events"
	"jobsearch-engine/internal/scrape/types"
)

type Deps struct {
	Hub *events.Hub

	// Atomic stores
	CfgVal       *atomic.Value // stores config.Config
	SearchStatus *atomic.Value // stores types.SearchStatus

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Search entrypoint (injected for testability)
	RunSearch func(ctx context.Context, cfg config.Config, q types.Query, notify func(string)) ([]domain.JobRecord, error)
}
