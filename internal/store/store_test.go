package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsearch-engine/internal/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db.Pool))
	return db
}

func TestMigrateIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db.Pool))

	var v int
	require.NoError(t, db.Pool.QueryRow(`PRAGMA user_version;`).Scan(&v))
	assert.Equal(t, 1, v)
}

func TestSaveRun(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	jobs := []domain.JobRecord{
		{Title: "Data Analyst", Company: "TCS", Location: "Bangalore",
			Experience: "2-5 years", Salary: "Not disclosed",
			ApplyURL: "https://example.com/jobs/1", Source: domain.SourceTimesJobs},
		{Title: "Data Engineer", Company: "Google", Location: "Remote",
			Experience: "3+ years", Salary: "$120k",
			ApplyURL: "https://example.com/jobs/2", Source: domain.SourceLinkedIn},
	}
	require.NoError(t, SaveRun(ctx, db.Pool, "run-1", "Data Analyst", "India", jobs))

	var count int
	require.NoError(t, db.Pool.QueryRow(
		`SELECT result_count FROM search_runs WHERE run_id = ?`, "run-1").Scan(&count))
	assert.Equal(t, 2, count)

	rows, err := db.Pool.Query(
		`SELECT position, title, source FROM results WHERE run_id = ? ORDER BY position`, "run-1")
	require.NoError(t, err)
	defer rows.Close()

	var got []string
	for rows.Next() {
		var pos int
		var title, source string
		require.NoError(t, rows.Scan(&pos, &title, &source))
		got = append(got, title+"/"+source)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"Data Analyst/TimesJobs", "Data Engineer/LinkedIn"}, got)
}

func TestSaveRunEmpty(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, SaveRun(context.Background(), db.Pool, "run-2", "Dev", "India", nil))

	var count int
	require.NoError(t, db.Pool.QueryRow(
		`SELECT result_count FROM search_runs WHERE run_id = ?`, "run-2").Scan(&count))
	assert.Equal(t, 0, count)
}
