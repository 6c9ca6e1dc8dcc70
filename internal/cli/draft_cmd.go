package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danielcooke/planscan/internal/cli/formatter"
	"github.com/danielcooke/planscan/internal/domain"
	"github.com/danielcooke/planscan/internal/service"
	"github.com/spf13/cobra"
)

func newDraftCmd(app *App) *cobra.Command {
	var noSave bool

	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Interactively draft a task list and plan it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireTTY("draft"); err != nil {
				return err
			}
			tasks, err := collectDraftTasks()
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks entered.")
				return nil
			}

			result, err := app.Analysis.AnalyzeTasks(cmd.Context(), "draft", tasks, service.AnalysisOptions{Save: !noSave})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.Analysis.Plan != nil {
				fmt.Fprintln(out, formatter.FormatPlan(result.Analysis.Plan))
			} else {
				fmt.Fprintln(out, formatter.FormatCycles(result.Analysis.Cycles))
			}
			if result.RunID != "" {
				fmt.Fprintln(out, formatter.Dim("Saved to history as "+formatter.ShortID(result.RunID)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not record this analysis in history")

	return cmd
}

// collectDraftTasks runs the entry form in a loop until the user declines
// to add another task.
func collectDraftTasks() ([]domain.Task, error) {
	var tasks []domain.Task
	for {
		id := fmt.Sprintf("T%03d", len(tasks)+1)
		var desc, deps, estimate string

		if err := draftTaskForm(&id, &desc, &deps, &estimate).Run(); err != nil {
			return nil, err
		}

		t := domain.NewTask(strings.TrimSpace(id), strings.TrimSpace(desc), splitDependencyList(deps))
		if v, err := strconv.Atoi(estimate); err == nil && v > 0 {
			t.EstimatedTime = v
		}
		tasks = append(tasks, t)

		more := true
		if err := confirmForm("Add another task?", &more).Run(); err != nil {
			return nil, err
		}
		if !more {
			return tasks, nil
		}
	}
}
