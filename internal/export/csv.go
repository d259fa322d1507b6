// Package export renders the final record list: human-readable console
// output and the delimited file artifact.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"jobsearch-engine/internal/domain"
)

// Column order is part of the artifact's contract; downstream spreadsheet
// imports depend on it.
var csvColumns = []string{"title", "company", "location", "experience", "salary", "apply_url", "source"}

// DefaultCSVPath names the artifact after the moment the search ran.
func DefaultCSVPath(dir string, now time.Time) string {
	return filepath.Join(dir, "jobs_"+now.Format("20060102_150405")+".csv")
}

// WriteCSV writes all records to path, one row per record plus a header.
// A sidecar flock guards the path: search runs may execute in parallel
// instances, and two writers on one file would interleave rows.
func WriteCSV(path string, jobs []domain.JobRecord) error {
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, j := range jobs {
		row := []string{j.Title, j.Company, j.Location, j.Experience, j.Salary, j.ApplyURL, j.Source}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
