package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielcooke/planscan/internal/db"
	"github.com/danielcooke/planscan/internal/domain"
	"github.com/danielcooke/planscan/internal/markdown"
	"github.com/danielcooke/planscan/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const instructionDoc = `# Deployment

1. Provision servers
2. Install runtime (depends on T001)
3. Configure database (depends on T001)
4. Deploy application (depends on T002, T003)
`

func newTestRunRepo(t *testing.T) repository.RunRepo {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return repository.NewSQLiteRunRepo(database)
}

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "instructions.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAnalyzeFile_FullPipeline(t *testing.T) {
	repo := newTestRunRepo(t)
	svc := NewAnalysisService(repo)
	path := writeDoc(t, instructionDoc)

	result, err := svc.AnalyzeFile(context.Background(), path, AnalysisOptions{Save: true})
	require.NoError(t, err)

	require.NotNil(t, result.Document)
	assert.Len(t, result.Document.Sections, 1)
	require.Len(t, result.Tasks, 4)
	assert.Equal(t, "T001", result.Tasks[0].ID)
	assert.Equal(t, []string{"T002", "T003"}, result.Tasks[3].Dependencies)

	analysis := result.Analysis
	require.NotNil(t, analysis)
	require.NotNil(t, analysis.Plan)
	assert.Len(t, analysis.Plan.Phases, 3)
	assert.Equal(t, 3, analysis.Plan.CriticalPathTime)

	require.NotEmpty(t, result.RunID)
	run, err := repo.GetByID(context.Background(), result.RunID)
	require.NoError(t, err)
	assert.Equal(t, path, run.SourcePath)
	assert.Equal(t, 4, run.TaskCount)
	assert.False(t, run.HasCycles)
	assert.Equal(t, 3, run.PhaseCount)
	assert.Contains(t, run.PlanJSON, `"critical_path"`)
}

func TestAnalyzeFile_NoSaveLeavesHistoryEmpty(t *testing.T) {
	repo := newTestRunRepo(t)
	svc := NewAnalysisService(repo)
	path := writeDoc(t, instructionDoc)

	result, err := svc.AnalyzeFile(context.Background(), path, AnalysisOptions{})
	require.NoError(t, err)
	assert.Empty(t, result.RunID)

	runs, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestAnalyzeFile_MissingFile(t *testing.T) {
	svc := NewAnalysisService(nil)

	_, err := svc.AnalyzeFile(context.Background(), "/nonexistent/file.md", AnalysisOptions{})
	assert.ErrorContains(t, err, "reading instruction file")
}

func TestAnalyzeFile_NoRepoStillAnalyzes(t *testing.T) {
	svc := NewAnalysisService(nil)
	path := writeDoc(t, instructionDoc)

	result, err := svc.AnalyzeFile(context.Background(), path, AnalysisOptions{Save: true})
	require.NoError(t, err)
	assert.NotNil(t, result.Analysis.Plan)
	assert.Empty(t, result.RunID)
}

func TestAnalyzeTasks_CyclicRunRecordedWithoutPlan(t *testing.T) {
	repo := newTestRunRepo(t)
	svc := NewAnalysisService(repo)

	tasks := []domain.Task{
		domain.NewTask("T001", "first", []string{"T002"}),
		domain.NewTask("T002", "second", []string{"T001"}),
	}

	result, err := svc.AnalyzeTasks(context.Background(), "draft", tasks, AnalysisOptions{Save: true})
	require.NoError(t, err)
	assert.True(t, result.Analysis.HasCircularDependencies)
	assert.Nil(t, result.Analysis.Plan)

	run, err := repo.GetByID(context.Background(), result.RunID)
	require.NoError(t, err)
	assert.True(t, run.HasCycles)
	assert.Equal(t, 0, run.PhaseCount)
	assert.Equal(t, 2, run.TaskCount)
}

func TestTasksFromSteps_SequentialIDs(t *testing.T) {
	steps := []markdown.TaskStep{
		{Number: 1, Description: "first"},
		{Number: 2, Description: "second", Dependencies: []string{"T001"}},
		{Number: 3, Description: "third", Dependencies: []string{"T001", "T002"}},
	}

	tasks := TasksFromSteps(steps)
	require.Len(t, tasks, 3)
	assert.Equal(t, "T001", tasks[0].ID)
	assert.Equal(t, "T003", tasks[2].ID)
	assert.Equal(t, 1, tasks[0].EstimatedTime, "extracted steps default to one time unit")
	assert.Equal(t, []string{"T001", "T002"}, tasks[2].Dependencies)
}
