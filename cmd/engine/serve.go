package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"jobsearch-engine/internal/config"
	"jobsearch-engine/internal/domain"
	"jobsearch-engine/internal/events"
	"jobsearch-engine/internal/httpapi"
	"jobsearch-engine/internal/scrape"
	"jobsearch-engine/internal/scrape/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the search pipeline over HTTP",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, userCfgPath, err := loadConfig()
	if err != nil {
		return err
	}

	// one serving instance per data dir; a second one would fight over
	// the user config file
	lockPath := filepath.Join(filepath.Dir(userCfgPath), "engine.lock")
	lk := flock.New(lockPath)
	locked, err := lk.TryLock()
	if err != nil {
		return fmt.Errorf("instance lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another engine instance is already serving from %s", filepath.Dir(userCfgPath))
	}
	defer func() { _ = lk.Unlock() }()

	cfgVal := storeValue(cfg)
	statusVal := storeValue(types.SearchStatus{})
	hub := events.NewHub()

	deps := httpapi.Deps{
		Hub:          hub,
		CfgVal:       cfgVal,
		SearchStatus: statusVal,
		UserCfgPath:  userCfgPath,
		LoadCfg: func() (config.Config, error) {
			return config.Load(userCfgPath)
		},
		RunSearch: func(ctx context.Context, cfg config.Config, q types.Query, notify func(string)) ([]domain.JobRecord, error) {
			runner := scrape.NewRunner(cfg)
			runner.Notify = notify
			return runner.Run(ctx, q)
		},
	}

	mux := httpapi.NewMux(deps)
	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.AccessLog,
		httpapi.Recover,
		httpapi.Cors,
	)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	log.Printf("engine listening on http://%s (config=%s)", addr, userCfgPath)

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.Serve(ln)
}
