package planner

import "github.com/danielcooke/planscan/internal/domain"

// Phase is one parallel execution group in the assembled plan.
type Phase struct {
	Number         int      `json:"phase"`
	Tasks          []string `json:"tasks"`
	CanParallelize bool     `json:"can_parallelize"`
	EstimatedTime  int      `json:"estimated_time"`
}

// Plan is the complete execution schedule for an acyclic task set. It is a
// derived, read-only report: build a new one instead of mutating it.
type Plan struct {
	Phases                []Phase  `json:"phases"`
	CriticalPath          []string `json:"critical_path"`
	CriticalPathTime      int      `json:"critical_path_time"`
	TotalTasks            int      `json:"total_tasks"`
	ParallelizationFactor float64  `json:"parallelization_factor"`
}

// Analysis is the top-level result: either the cycle list or a full plan,
// never a partial one.
type Analysis struct {
	HasCircularDependencies bool    `json:"has_circular_dependencies"`
	Cycles                  []Cycle `json:"circular_dependencies"`
	Plan                    *Plan   `json:"execution_plan,omitempty"`
}

// AssemblePlan orchestrates sorting, levelization and critical path
// calculation into a Plan. The parallelization factor is total sequential
// work over critical path time (0 when the critical path time is 0).
func AssemblePlan(g *Graph, tasks map[string]domain.Task) (*Plan, error) {
	order, err := TopoSort(g)
	if err != nil {
		return nil, err
	}

	levels := Levelize(g, order)
	path, totalTime := CriticalPath(g, tasks, order)

	plan := &Plan{
		CriticalPath:     path,
		CriticalPathTime: totalTime,
		TotalTasks:       g.Len(),
	}

	sequential := 0
	for _, id := range g.ids {
		sequential += tasks[id].EstimatedTime
	}
	if totalTime > 0 {
		plan.ParallelizationFactor = float64(sequential) / float64(totalTime)
	}

	for i, level := range levels {
		phaseTime := 0
		for _, id := range level {
			if d := tasks[id].EstimatedTime; d > phaseTime {
				phaseTime = d
			}
		}
		plan.Phases = append(plan.Phases, Phase{
			Number:         i + 1,
			Tasks:          level,
			CanParallelize: len(level) > 1,
			EstimatedTime:  phaseTime,
		})
	}

	return plan, nil
}

// Analyze runs the full pipeline over a task collection. Duplicate IDs
// collapse last-write-wins before the graph is built. When no valid order
// exists the cycle list is reported and the plan omitted entirely.
func Analyze(tasks []domain.Task) *Analysis {
	set := domain.NewTaskSet(tasks)
	g := BuildGraph(set)

	plan, err := AssemblePlan(g, set.ByID())
	if err != nil {
		cycles := DetectCycles(g)
		return &Analysis{
			HasCircularDependencies: len(cycles) > 0,
			Cycles:                  cycles,
		}
	}
	return &Analysis{Plan: plan}
}
