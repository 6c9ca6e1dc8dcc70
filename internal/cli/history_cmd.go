package cli

import (
	"encoding/json"
	"fmt"

	"github.com/danielcooke/planscan/internal/cli/formatter"
	"github.com/danielcooke/planscan/internal/planner"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse previously saved analyses",
	}
	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryShowCmd(app),
		newHistoryClearCmd(app),
	)
	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent analysis runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := app.History.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRunList(runs))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs to show")

	return cmd
}

func newHistoryShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show the saved plan for a run (accepts an ID prefix)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := app.History.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var analysis planner.Analysis
			if err := json.Unmarshal([]byte(run.PlanJSON), &analysis); err != nil {
				return fmt.Errorf("decoding saved plan for run %s: %w", run.ID, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s  (%s)\n\n",
				formatter.Bold(formatter.ShortID(run.ID)),
				run.SourcePath,
				formatter.RelativeDate(run.CreatedAt))

			if analysis.Plan != nil {
				fmt.Fprintln(out, formatter.FormatPlan(analysis.Plan))
			} else {
				fmt.Fprintln(out, formatter.FormatCycles(analysis.Cycles))
			}
			return nil
		},
	}
	return cmd
}

func newHistoryClearCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all saved analysis runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.History.ClearRuns(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}
	return cmd
}
