package service

import (
	"context"

	"github.com/danielcooke/planscan/internal/domain"
	"github.com/danielcooke/planscan/internal/markdown"
	"github.com/danielcooke/planscan/internal/planner"
	"github.com/danielcooke/planscan/internal/pseudocode"
)

// AnalyzeResult bundles everything one analysis produced.
type AnalyzeResult struct {
	SourcePath string
	Document   *markdown.Document
	Tasks      []domain.Task
	Analysis   *planner.Analysis
	RunID      string
}

// ValidateResult holds the pseudocode findings for one file.
type ValidateResult struct {
	SourcePath string
	Issues     []pseudocode.Issue
}

// AnalysisOptions controls side effects of an analysis.
type AnalysisOptions struct {
	// Save persists the finished run to history.
	Save bool
}

type AnalysisService interface {
	// AnalyzeFile parses an instruction markdown file, extracts its task
	// steps and computes the execution plan.
	AnalyzeFile(ctx context.Context, path string, opts AnalysisOptions) (*AnalyzeResult, error)
	// AnalyzeTasks runs the planning pipeline over an already-built task
	// list, e.g. from the interactive draft flow.
	AnalyzeTasks(ctx context.Context, source string, tasks []domain.Task, opts AnalysisOptions) (*AnalyzeResult, error)
}

type ValidationService interface {
	ValidateFile(ctx context.Context, path string) (*ValidateResult, error)
}

type HistoryService interface {
	ListRuns(ctx context.Context, limit int) ([]*domain.AnalysisRun, error)
	GetRun(ctx context.Context, id string) (*domain.AnalysisRun, error)
	ClearRuns(ctx context.Context) error
}
