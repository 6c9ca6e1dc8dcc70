package repository

import (
	"context"
	"testing"
	"time"

	"github.com/danielcooke/planscan/internal/db"
	"github.com/danielcooke/planscan/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *SQLiteRunRepo {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewSQLiteRunRepo(database)
}

func sampleRun(created time.Time) *domain.AnalysisRun {
	return &domain.AnalysisRun{
		ID:          uuid.New().String(),
		SourcePath:  "docs/setup.md",
		TaskCount:   5,
		HasCycles:   false,
		PhaseCount:  3,
		TotalTime:   9,
		Parallelism: 1.67,
		PlanJSON:    `{"phases":[]}`,
		CreatedAt:   created,
	}
}

func TestSQLiteRunRepo_CreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	run := sampleRun(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, run))

	got, err := repo.GetByID(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, "docs/setup.md", got.SourcePath)
	assert.Equal(t, 5, got.TaskCount)
	assert.False(t, got.HasCycles)
	assert.Equal(t, 3, got.PhaseCount)
	assert.Equal(t, 9, got.TotalTime)
	assert.InDelta(t, 1.67, got.Parallelism, 1e-9)
	assert.Equal(t, `{"phases":[]}`, got.PlanJSON)
	assert.True(t, got.CreatedAt.Equal(run.CreatedAt))
}

func TestSQLiteRunRepo_GetMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), "no-such-id")
	assert.ErrorContains(t, err, "not found")
}

func TestSQLiteRunRepo_ListRecentNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	older := sampleRun(base)
	newer := sampleRun(base.Add(time.Hour))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	runs, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, newer.ID, runs[0].ID)
	assert.Equal(t, older.ID, runs[1].ID)
}

func TestSQLiteRunRepo_ListRecentHonorsLimit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, sampleRun(base.Add(time.Duration(i)*time.Minute))))
	}

	runs, err := repo.ListRecent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestSQLiteRunRepo_DeleteAll(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleRun(time.Now().UTC())))
	require.NoError(t, repo.DeleteAll(ctx))

	runs, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestSQLiteRunRepo_CycleRunRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	run := sampleRun(time.Now().UTC().Truncate(time.Second))
	run.HasCycles = true
	run.PlanJSON = ""
	require.NoError(t, repo.Create(ctx, run))

	got, err := repo.GetByID(ctx, run.ID)
	require.NoError(t, err)
	assert.True(t, got.HasCycles)
	assert.Empty(t, got.PlanJSON)
}
