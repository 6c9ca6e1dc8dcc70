package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/danielcooke/planscan/internal/pseudocode"
)

// FormatIssues formats pseudocode findings grouped by category.
func FormatIssues(issues []pseudocode.Issue) string {
	if len(issues) == 0 {
		return RenderBox("Pseudocode", StyleGreen.Render("No issues found.")+"\n")
	}

	grouped := pseudocode.GroupByCategory(issues)
	categories := make([]string, 0, len(grouped))
	for category := range grouped {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var b strings.Builder
	for _, category := range categories {
		b.WriteString(StyleHeader.Render(category) + "\n")
		for _, issue := range grouped[category] {
			level := IssueLevelStyle(issue.Level).Render(strings.ToUpper(string(issue.Level)))
			location := ""
			if issue.Line > 0 {
				location = Dim(fmt.Sprintf(" line %d:", issue.Line))
			}
			b.WriteString(fmt.Sprintf("  [%s]%s %s\n", level, location, issue.Message))
			if issue.Suggestion != "" {
				b.WriteString(Dim(fmt.Sprintf("    -> %s\n", issue.Suggestion)))
			}
		}
		b.WriteString("\n")
	}

	counts := map[pseudocode.IssueLevel]int{}
	for _, issue := range issues {
		counts[issue.Level]++
	}
	b.WriteString(fmt.Sprintf("%s %s, %s, %s\n",
		Bold("Summary:"),
		StyleRed.Render(fmt.Sprintf("%d errors", counts[pseudocode.LevelError]+counts[pseudocode.LevelCritical])),
		StyleYellow.Render(fmt.Sprintf("%d warnings", counts[pseudocode.LevelWarning])),
		StyleBlue.Render(fmt.Sprintf("%d notes", counts[pseudocode.LevelInfo]))))

	return RenderBox("Pseudocode", b.String())
}
