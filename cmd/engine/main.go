// Package main is the jobsearch engine entry point: a one-shot `search`
// command and an HTTP `serve` mode over the same pipeline.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"jobsearch-engine/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "engine",
	Short: "Best-effort job search across multiple job boards",
	Long:  "Searches TimesJobs, LinkedIn and friends for a job title, merges the results into one deduplicated list and writes them to the console and a CSV file.",
}

func main() {
	// load .env if present
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the data dir, seeds the user config on first run
// and returns the validated config plus the user config path.
func loadConfig() (config.Config, string, error) {
	dataDir := os.Getenv("JOBSEARCH_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return config.Config{}, "", err
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		return config.Config{}, "", fmt.Errorf("config bootstrap: %w", err)
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		return config.Config{}, "", fmt.Errorf("config load (%s): %w", userCfgPath, err)
	}

	normalized, vr := config.NormalizeAndValidate(cfg)
	for _, wmsg := range vr.Warnings {
		log.Printf("level=warn msg=%q", wmsg)
	}
	if !vr.OK() {
		return config.Config{}, "", fmt.Errorf("config invalid: %v", vr.Errors)
	}
	return normalized, userCfgPath, nil
}

func storeValue[T any](v T) *atomic.Value {
	av := &atomic.Value{}
	av.Store(v)
	return av
}
