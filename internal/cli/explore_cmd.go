package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/danielcooke/planscan/internal/cli/formatter"
	"github.com/danielcooke/planscan/internal/service"
	"github.com/spf13/cobra"
)

func newExploreCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore FILE",
		Short: "Browse a file's analysis in a scrollable full-screen view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireTTY("explore"); err != nil {
				return err
			}
			result, err := app.Analysis.AnalyzeFile(cmd.Context(), args[0], service.AnalysisOptions{})
			if err != nil {
				return err
			}

			var body strings.Builder
			body.WriteString(formatter.FormatDocument(result.Document, true))
			body.WriteString("\n")
			if result.Analysis.Plan != nil {
				body.WriteString(formatter.FormatPlan(result.Analysis.Plan))
			} else {
				body.WriteString(formatter.FormatCycles(result.Analysis.Cycles))
			}

			m := newExploreModel(result.SourcePath, body.String())
			p := tea.NewProgram(m, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
	return cmd
}

type exploreKeyMap struct {
	Quit key.Binding
	Top  key.Binding
	End  key.Binding
}

func defaultExploreKeyMap() exploreKeyMap {
	return exploreKeyMap{
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
		Top:  key.NewBinding(key.WithKeys("g", "home")),
		End:  key.NewBinding(key.WithKeys("G", "end")),
	}
}

type exploreModel struct {
	title   string
	content string
	keys    exploreKeyMap
	vp      viewport.Model
	ready   bool
}

func newExploreModel(title, content string) *exploreModel {
	return &exploreModel{
		title:   title,
		content: content,
		keys:    defaultExploreKeyMap(),
	}
}

func (m *exploreModel) Init() tea.Cmd {
	return nil
}

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.vp.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.End):
			m.vp.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.renderHeader(msg.Width))
		footerHeight := lipgloss.Height(m.renderFooter(msg.Width))
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.vp.SetContent(m.content)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - headerHeight - footerHeight
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *exploreModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.renderHeader(m.vp.Width) + "\n" + m.vp.View() + "\n" + m.renderFooter(m.vp.Width)
}

func (m *exploreModel) renderHeader(width int) string {
	title := formatter.StyleHeader.Render("planscan") + "  " + formatter.StyleFg.Render(m.title)
	sep := formatter.StyleDim.Render(strings.Repeat("─", max(width, 20)))
	return title + "\n" + sep
}

func (m *exploreModel) renderFooter(width int) string {
	hints := []string{
		m.scrollIndicator(),
		formatter.Dim("↑↓ pgup/pgdn: scroll"),
		formatter.Dim("g/G: top/bottom"),
		formatter.Dim("q: quit"),
	}
	sep := formatter.StyleDim.Render(strings.Repeat("─", max(width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}

func (m *exploreModel) scrollIndicator() string {
	if m.vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if m.vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	return formatter.Dim(fmt.Sprintf("[%d%%]", int(m.vp.ScrollPercent()*100)))
}
