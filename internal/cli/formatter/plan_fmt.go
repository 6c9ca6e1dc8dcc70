package formatter

import (
	"fmt"
	"strings"

	"github.com/danielcooke/planscan/internal/planner"
)

// FormatPlan formats an execution plan: the phase table, the critical
// path chain and the parallelization factor to two decimal places.
func FormatPlan(plan *planner.Plan) string {
	var b strings.Builder

	headers := []string{"PHASE", "TASKS", "PARALLEL", "TIME"}
	rows := make([][]string, 0, len(plan.Phases))
	for _, phase := range plan.Phases {
		parallel := Dim("--")
		if phase.CanParallelize {
			parallel = StyleGreen.Render("yes")
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", phase.Number),
			strings.Join(phase.Tasks, ", "),
			parallel,
			fmt.Sprintf("%d", phase.EstimatedTime),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(Bold("Critical path: "))
	if len(plan.CriticalPath) > 0 {
		b.WriteString(StylePurple.Render(strings.Join(plan.CriticalPath, " -> ")))
	} else {
		b.WriteString(Dim("none"))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %d tasks, %d phases, %d time units\n",
		Bold("Totals:"), plan.TotalTasks, len(plan.Phases), plan.CriticalPathTime))
	b.WriteString(fmt.Sprintf("%s %s\n",
		Bold("Parallelization factor:"),
		StyleGreen.Render(fmt.Sprintf("%.2fx", plan.ParallelizationFactor))))

	return RenderBox("Execution Plan", b.String())
}

// FormatCycles formats the cycle report shown when scheduling is
// impossible.
func FormatCycles(cycles []planner.Cycle) string {
	var b strings.Builder

	b.WriteString(StyleRed.Render("Circular dependencies detected!") + "\n\n")
	if len(cycles) == 0 {
		b.WriteString(Dim("No cycle detail available: a task references an ID that no task resolves.") + "\n")
	}
	for _, cycle := range cycles {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			StyleRed.Render("Cycle:"),
			strings.Join(cycle, " -> ")))
	}

	return RenderBox("Dependency Analysis", b.String())
}
