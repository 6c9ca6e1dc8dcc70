package domain

import "time"

// AnalysisRun records the outcome of one completed analysis for history.
type AnalysisRun struct {
	ID          string
	SourcePath  string
	TaskCount   int
	HasCycles   bool
	PhaseCount  int
	TotalTime   int
	Parallelism float64
	PlanJSON    string
	CreatedAt   time.Time
}
