package cli

import (
	"fmt"

	"github.com/danielcooke/planscan/internal/cli/formatter"
	"github.com/danielcooke/planscan/internal/service"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	var (
		verbose bool
		noSave  bool
	)

	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Extract tasks from an instruction file and compute its execution plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Analysis.AnalyzeFile(cmd.Context(), args[0], service.AnalysisOptions{Save: !noSave})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatDocument(result.Document, verbose))

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

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show sections, code blocks and ambiguities")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not record this analysis in history")

	return cmd
}
