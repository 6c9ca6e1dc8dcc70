package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/danielcooke/planscan/internal/domain"
	"github.com/danielcooke/planscan/internal/markdown"
	"github.com/danielcooke/planscan/internal/planner"
	"github.com/danielcooke/planscan/internal/repository"
	"github.com/google/uuid"
)

// AnalysisServiceImpl implements AnalysisService. The run repository is
// optional; without one, results are simply not recorded.
type AnalysisServiceImpl struct {
	runs repository.RunRepo
}

// NewAnalysisService creates an AnalysisService backed by the given run
// repository (nil disables history).
func NewAnalysisService(runs repository.RunRepo) *AnalysisServiceImpl {
	return &AnalysisServiceImpl{runs: runs}
}

func (s *AnalysisServiceImpl) AnalyzeFile(ctx context.Context, path string, opts AnalysisOptions) (*AnalyzeResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading instruction file: %w", err)
	}

	doc := markdown.Parse(string(content))
	tasks := TasksFromSteps(doc.Tasks)

	result, err := s.AnalyzeTasks(ctx, path, tasks, opts)
	if err != nil {
		return nil, err
	}
	result.Document = doc
	return result, nil
}

func (s *AnalysisServiceImpl) AnalyzeTasks(ctx context.Context, source string, tasks []domain.Task, opts AnalysisOptions) (*AnalyzeResult, error) {
	analysis := planner.Analyze(tasks)

	result := &AnalyzeResult{
		SourcePath: source,
		Tasks:      tasks,
		Analysis:   analysis,
	}

	if opts.Save && s.runs != nil {
		run, err := buildRun(source, tasks, analysis)
		if err != nil {
			return nil, err
		}
		if err := s.runs.Create(ctx, run); err != nil {
			return nil, fmt.Errorf("saving analysis run: %w", err)
		}
		result.RunID = run.ID
	}

	return result, nil
}

func buildRun(source string, tasks []domain.Task, analysis *planner.Analysis) (*domain.AnalysisRun, error) {
	planJSON, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("encoding analysis: %w", err)
	}

	run := &domain.AnalysisRun{
		ID:         uuid.New().String(),
		SourcePath: source,
		TaskCount:  domain.NewTaskSet(tasks).Len(),
		HasCycles:  analysis.HasCircularDependencies,
		PlanJSON:   string(planJSON),
		CreatedAt:  time.Now().UTC(),
	}
	if plan := analysis.Plan; plan != nil {
		run.PhaseCount = len(plan.Phases)
		run.TotalTime = plan.CriticalPathTime
		run.Parallelism = plan.ParallelizationFactor
	}
	return run, nil
}

// TasksFromSteps converts extracted task steps into planner tasks. IDs are
// assigned T001, T002, ... in step order, which is what explicit
// dependency references in instruction documents point at.
func TasksFromSteps(steps []markdown.TaskStep) []domain.Task {
	tasks := make([]domain.Task, 0, len(steps))
	for i, step := range steps {
		id := fmt.Sprintf("T%03d", i+1)
		tasks = append(tasks, domain.NewTask(id, step.Description, step.Dependencies))
	}
	return tasks
}
