package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER
// TABLE re-runs that hit existing columns are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS analysis_runs (
		id              TEXT PRIMARY KEY,
		source_path     TEXT NOT NULL,
		task_count      INTEGER NOT NULL DEFAULT 0,
		has_cycles      INTEGER NOT NULL DEFAULT 0,
		phase_count     INTEGER NOT NULL DEFAULT 0,
		total_time      INTEGER NOT NULL DEFAULT 0,
		parallelism     REAL NOT NULL DEFAULT 0,
		plan_json       TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_analysis_runs_created_at
		ON analysis_runs(created_at DESC)`,
}
