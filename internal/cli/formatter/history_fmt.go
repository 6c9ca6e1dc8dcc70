package formatter

import (
	"fmt"

	"github.com/danielcooke/planscan/internal/domain"
)

// FormatRunList formats stored analysis runs as a table, newest first.
func FormatRunList(runs []*domain.AnalysisRun) string {
	if len(runs) == 0 {
		return Dim("No analysis runs recorded yet.") + "\n"
	}

	headers := []string{"ID", "SOURCE", "TASKS", "PHASES", "TIME", "FACTOR", "WHEN"}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		factor := Dim("--")
		if run.HasCycles {
			factor = StyleRed.Render("cyclic")
		} else if run.Parallelism > 0 {
			factor = fmt.Sprintf("%.2fx", run.Parallelism)
		}
		rows = append(rows, []string{
			StyleBlue.Render(ShortID(run.ID)),
			run.SourcePath,
			fmt.Sprintf("%d", run.TaskCount),
			fmt.Sprintf("%d", run.PhaseCount),
			fmt.Sprintf("%d", run.TotalTime),
			factor,
			Dim(RelativeDate(run.CreatedAt)),
		})
	}

	return RenderTable(headers, rows)
}
