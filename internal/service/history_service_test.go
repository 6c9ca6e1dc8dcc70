package service

import (
	"context"
	"testing"
	"time"

	"github.com/danielcooke/planscan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRun(t *testing.T, svc *HistoryServiceImpl, id string, created time.Time) {
	t.Helper()
	err := svc.runs.Create(context.Background(), &domain.AnalysisRun{
		ID:         id,
		SourcePath: "doc.md",
		CreatedAt:  created,
	})
	require.NoError(t, err)
}

func TestHistoryService_GetRunByExactID(t *testing.T) {
	svc := NewHistoryService(newTestRunRepo(t))
	seedRun(t, svc, "aaaa1111-0000-0000-0000-000000000000", time.Now().UTC())

	run, err := svc.GetRun(context.Background(), "aaaa1111-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Equal(t, "doc.md", run.SourcePath)
}

func TestHistoryService_GetRunByUniquePrefix(t *testing.T) {
	svc := NewHistoryService(newTestRunRepo(t))
	now := time.Now().UTC()
	seedRun(t, svc, "aaaa1111-0000-0000-0000-000000000000", now)
	seedRun(t, svc, "bbbb2222-0000-0000-0000-000000000000", now)

	run, err := svc.GetRun(context.Background(), "bbbb")
	require.NoError(t, err)
	assert.Equal(t, "bbbb2222-0000-0000-0000-000000000000", run.ID)
}

func TestHistoryService_AmbiguousPrefix(t *testing.T) {
	svc := NewHistoryService(newTestRunRepo(t))
	now := time.Now().UTC()
	seedRun(t, svc, "aaaa1111-0000-0000-0000-000000000000", now)
	seedRun(t, svc, "aaaa2222-0000-0000-0000-000000000000", now)

	_, err := svc.GetRun(context.Background(), "aaaa")
	assert.ErrorContains(t, err, "ambiguous")
}

func TestHistoryService_UnknownID(t *testing.T) {
	svc := NewHistoryService(newTestRunRepo(t))

	_, err := svc.GetRun(context.Background(), "zzzz")
	assert.ErrorContains(t, err, "not found")
}

func TestHistoryService_ClearRuns(t *testing.T) {
	svc := NewHistoryService(newTestRunRepo(t))
	seedRun(t, svc, "aaaa1111-0000-0000-0000-000000000000", time.Now().UTC())

	require.NoError(t, svc.ClearRuns(context.Background()))

	runs, err := svc.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
