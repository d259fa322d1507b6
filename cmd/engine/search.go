package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"jobsearch-engine/internal/domain"
	"jobsearch-engine/internal/export"
	"jobsearch-engine/internal/scrape"
	"jobsearch-engine/internal/scrape/types"
	"jobsearch-engine/internal/store"
)

var (
	searchTitle    string
	searchLocation string
	searchCSVPath  string
	searchDBPath   string
	searchNoCSV    bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run one job search and print + export the results",
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchTitle, "title", "t", "", "job title to search for (prompted when omitted)")
	searchCmd.Flags().StringVarP(&searchLocation, "location", "l", "", "location (default from config)")
	searchCmd.Flags().StringVar(&searchCSVPath, "csv", "", "CSV output path (default jobs_<timestamp>.csv in output.csv_dir)")
	searchCmd.Flags().StringVar(&searchDBPath, "db", "", "also archive the run to this SQLite file")
	searchCmd.Flags().BoolVar(&searchNoCSV, "no-csv", false, "skip the CSV artifact")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	title := strings.TrimSpace(searchTitle)
	if title == "" {
		title = prompt("Enter job title (e.g., Python Developer): ")
	}
	if title == "" {
		title = "Software Developer"
	}
	location := strings.TrimSpace(searchLocation)
	if location == "" {
		location = cfg.Search.DefaultLocation
	}

	runner := scrape.NewRunner(cfg)
	runner.Notify = export.ProgressPrinter(os.Stdout)

	jobs, err := runner.Run(cmd.Context(), types.Query{Title: title, Location: location})
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		fmt.Println("❌ No jobs found. Try different keywords.")
		return nil
	}

	export.Render(os.Stdout, jobs)

	if !searchNoCSV {
		path := searchCSVPath
		if path == "" {
			path = export.DefaultCSVPath(cfg.Output.CSVDir, time.Now())
		}
		if err := export.WriteCSV(path, jobs); err != nil {
			return fmt.Errorf("csv export: %w", err)
		}
		fmt.Printf("\n📊 Results saved to: %s\n", path)
	}

	dbPath := searchDBPath
	if dbPath == "" {
		dbPath = cfg.Output.DBPath
	}
	if dbPath != "" {
		if err := archiveRun(cmd, dbPath, title, location, jobs); err != nil {
			// the archive is best-effort; the console and CSV output stand
			log.Printf("level=warn msg=\"run archive failed\" err=%v", err)
		}
	}

	fmt.Printf("\n🎉 Search completed! Found %d jobs.\n", len(jobs))
	return nil
}

func archiveRun(cmd *cobra.Command, path, title, location string, jobs []domain.JobRecord) error {
	db, err := store.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.Migrate(db.Pool); err != nil {
		return err
	}
	return store.SaveRun(cmd.Context(), db.Pool, uuid.NewString(), title, location, jobs)
}

func prompt(label string) string {
	fmt.Print(label)
	sc := bufio.NewScanner(os.Stdin)
	if sc.Scan() {
		return strings.TrimSpace(sc.Text())
	}
	return ""
}
