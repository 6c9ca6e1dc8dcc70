package cli

import (
	"fmt"
	"strings"

	"github.com/danielcooke/planscan/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Analysis service.AnalysisService
	Validate service.ValidationService
	History  service.HistoryService

	// IsInteractive reports whether stdin is attached to a terminal.
	// Commands that need a TTY (draft, explore) refuse to run without one.
	IsInteractive func() bool
}

func (a *App) requireTTY(command string) error {
	if a.IsInteractive != nil && !a.IsInteractive() {
		return fmt.Errorf("%s requires an interactive terminal", command)
	}
	return nil
}

// NewRootCmd creates the top-level "planscan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "planscan",
		Short: "Analyze instruction documents and plan task execution",
		Long: "planscan extracts task lists from instruction markdown files, checks their\n" +
			"dependencies for cycles, and computes parallel execution phases, the\n" +
			"critical path and the achievable speedup.",
		SilenceUsage: true,
	}

	// Accept snake_case flag spellings for muscle-memory compatibility.
	root.PersistentFlags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newAnalyzeCmd(app),
		newValidateCmd(app),
		newDraftCmd(app),
		newExploreCmd(app),
		newHistoryCmd(app),
	)

	return root
}
