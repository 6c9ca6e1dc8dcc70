package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielcooke/planscan/internal/domain"
)

// SQLiteRunRepo implements RunRepo using a SQLite database.
type SQLiteRunRepo struct {
	db *sql.DB
}

// NewSQLiteRunRepo creates a new SQLiteRunRepo.
func NewSQLiteRunRepo(db *sql.DB) *SQLiteRunRepo {
	return &SQLiteRunRepo{db: db}
}

func (r *SQLiteRunRepo) Create(ctx context.Context, run *domain.AnalysisRun) error {
	query := `INSERT INTO analysis_runs (id, source_path, task_count, has_cycles, phase_count, total_time, parallelism, plan_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.SourcePath,
		run.TaskCount,
		boolToInt(run.HasCycles),
		run.PhaseCount,
		run.TotalTime,
		run.Parallelism,
		run.PlanJSON,
		run.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting analysis run: %w", err)
	}
	return nil
}

func (r *SQLiteRunRepo) GetByID(ctx context.Context, id string) (*domain.AnalysisRun, error) {
	query := `SELECT id, source_path, task_count, has_cycles, phase_count, total_time, parallelism, plan_json, created_at
		FROM analysis_runs WHERE id = ?`
	return r.scanRun(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteRunRepo) ListRecent(ctx context.Context, limit int) ([]*domain.AnalysisRun, error) {
	query := `SELECT id, source_path, task_count, has_cycles, phase_count, total_time, parallelism, plan_json, created_at
		FROM analysis_runs ORDER BY created_at DESC, id LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing analysis runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.AnalysisRun
	for rows.Next() {
		run, err := r.scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (r *SQLiteRunRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM analysis_runs`); err != nil {
		return fmt.Errorf("deleting analysis runs: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteRunRepo) scanRun(row rowScanner) (*domain.AnalysisRun, error) {
	var run domain.AnalysisRun
	var hasCycles int
	var createdAt string

	err := row.Scan(
		&run.ID,
		&run.SourcePath,
		&run.TaskCount,
		&hasCycles,
		&run.PhaseCount,
		&run.TotalTime,
		&run.Parallelism,
		&run.PlanJSON,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("analysis run not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning analysis run: %w", err)
	}

	run.HasCycles = hasCycles != 0
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		run.CreatedAt = t
	}
	return &run, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
