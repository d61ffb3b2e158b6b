// Package summary shows the final score of a quiz and offers a rematch.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mgarcia/palabra/internal/router"
	"github.com/mgarcia/palabra/internal/screen"
	"github.com/mgarcia/palabra/internal/ui/layout"
	"github.com/mgarcia/palabra/internal/ui/theme"
)

// SummaryScreen displays the quiz result.
type SummaryScreen struct {
	score   int
	total   int
	rematch func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen. rematch builds a fresh quiz screen
// when the user goes again.
func New(score, total int, rematch func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{score: score, total: total, rematch: rematch}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Play again"},
		{Key: "Enter/Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r":
			if s.rematch != nil {
				return s, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: s.rematch()}
				}
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Quiz complete!"))
	b.WriteString("\n\n")

	scoreLine := fmt.Sprintf("%d / %d", s.score, s.total)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render(scoreLine))
	b.WriteString("\n\n")

	if msg := scoreMessage(s.score, s.total); msg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(msg))
		b.WriteString("\n")
	}

	return b.String()
}
