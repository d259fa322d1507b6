package store

import (
	"context"
	"database/sql"
	"time"

	"jobsearch-engine/internal/domain"
)

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS search_runs (
  run_id TEXT PRIMARY KEY,
  run_at TEXT NOT NULL,
  title TEXT NOT NULL,
  location TEXT NOT NULL,
  result_count INTEGER NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS results (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  run_id TEXT NOT NULL REFERENCES search_runs(run_id),
  position INTEGER NOT NULL,
  title TEXT NOT NULL,
  company TEXT NOT NULL,
  location TEXT NOT NULL,
  experience TEXT NOT NULL,
  salary TEXT NOT NULL,
  apply_url TEXT NOT NULL,
  source TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_results_run ON results(run_id, position);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}
	return tx.Commit()
}

// SaveRun records one search run and its ordered results.
func SaveRun(ctx context.Context, db *sql.DB, runID, title, location string, jobs []domain.JobRecord) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO search_runs(run_id, run_at, title, location, result_count)
VALUES(?,?,?,?,?);`,
		runID, time.Now().UTC().Format(time.RFC3339), title, location, len(jobs),
	); err != nil {
		return err
	}

	for i, j := range jobs {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO results(run_id, position, title, company, location, experience, salary, apply_url, source)
VALUES(?,?,?,?,?,?,?,?,?);`,
			runID, i, j.Title, j.Company, j.Location, j.Experience, j.Salary, j.ApplyURL, j.Source,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}
