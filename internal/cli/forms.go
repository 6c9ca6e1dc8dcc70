package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/danielcooke/planscan/internal/cli/formatter"
)

var taskIDFormRe = regexp.MustCompile(`^T\d{3,}$`)

// planscanHuhTheme adapts the base huh theme to the formatter palette.
func planscanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateTaskID accepts IDs of the form T001, T042, T1234.
func validateTaskID(s string) error {
	if !taskIDFormRe.MatchString(strings.TrimSpace(s)) {
		return fmt.Errorf("use the form T001")
	}
	return nil
}

// validateOptionalPositiveInt accepts empty or a positive integer.
func validateOptionalPositiveInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// draftTaskForm collects one task entry.
func draftTaskForm(id, desc, deps, estimate *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task ID").
				Placeholder("T001").
				Value(id).
				Validate(validateTaskID),
			huh.NewInput().
				Title("Description").
				Placeholder("What does this task do?").
				Value(desc),
			huh.NewInput().
				Title("Depends on (comma-separated IDs, blank for none)").
				Placeholder("T001, T002").
				Value(deps),
			huh.NewInput().
				Title("Estimated time units").
				Placeholder("1").
				Value(estimate).
				Validate(validateOptionalPositiveInt),
		),
	).WithTheme(planscanHuhTheme()).WithShowHelp(false)
}

// confirmForm asks a yes/no question.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(planscanHuhTheme()).WithShowHelp(false)
}

// splitDependencyList parses a comma-separated dependency field.
func splitDependencyList(s string) []string {
	var deps []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			deps = append(deps, p)
		}
	}
	return deps
}
