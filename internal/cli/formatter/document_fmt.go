package formatter

import (
	"fmt"
	"strings"

	"github.com/danielcooke/planscan/internal/markdown"
)

// FormatDocument summarizes what was extracted from an instruction file.
// Verbose mode lists the individual sections, steps, questions and
// ambiguous lines.
func FormatDocument(doc *markdown.Document, verbose bool) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %d\n", Bold("Sections:"), len(doc.Sections)))
	if verbose {
		for _, s := range doc.Sections {
			indent := strings.Repeat("  ", s.Level-1)
			b.WriteString(fmt.Sprintf("  %s- %s %s\n", indent, s.Title, Dim(fmt.Sprintf("(level %d)", s.Level))))
		}
	}

	b.WriteString(fmt.Sprintf("%s %d\n", Bold("Task steps:"), len(doc.Tasks)))
	if verbose {
		for _, t := range doc.Tasks {
			line := fmt.Sprintf("  %d. %s", t.Number, t.Description)
			if len(t.Dependencies) > 0 {
				line += Dim(fmt.Sprintf(" (depends on: %s)", strings.Join(t.Dependencies, ", ")))
			}
			if t.Parallel {
				line += StyleGreen.Render(" [parallel]")
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString(fmt.Sprintf("%s %d\n", Bold("Questions:"), len(doc.Questions)))
	if verbose {
		for _, q := range doc.Questions {
			b.WriteString(fmt.Sprintf("  - %s\n", q))
		}
	}

	b.WriteString(fmt.Sprintf("%s %d\n", Bold("Ambiguities:"), len(doc.Ambiguities)))
	if verbose {
		for _, a := range doc.Ambiguities {
			b.WriteString(fmt.Sprintf("  %s %s\n", Dim(fmt.Sprintf("line %d:", a.Line)), a.Text))
			b.WriteString(Dim(fmt.Sprintf("    contains ambiguous term: %q\n", a.Term)))
		}
	}

	b.WriteString(fmt.Sprintf("%s %d\n", Bold("Code blocks:"), len(doc.CodeBlocks)))

	return RenderBox("Document", b.String())
}
