package cli

import (
	"fmt"

	"github.com/danielcooke/planscan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newValidateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check pseudocode blocks in an instruction file for common problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Validate.ValidateFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatIssues(result.Issues))
			return nil
		},
	}
	return cmd
}
