// Package history lists past quiz results.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mgarcia/palabra/internal/router"
	"github.com/mgarcia/palabra/internal/screen"
	"github.com/mgarcia/palabra/internal/store"
	"github.com/mgarcia/palabra/internal/ui/layout"
	"github.com/mgarcia/palabra/internal/ui/theme"
)

type historyLoadedMsg struct {
	results []store.QuizResult
	err     error
}

// HistoryScreen displays past quizzes, newest first.
type HistoryScreen struct {
	quizzes  *store.QuizRepo
	results  []store.QuizResult
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(quizzes *store.QuizRepo) *HistoryScreen {
	return &HistoryScreen{quizzes: quizzes}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		results, err := s.quizzes.Recent(context.Background(), 50)
		return historyLoadedMsg{results: results, err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.results = msg.results
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes yet. ¡Vamos!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, res := range s.results {
		dateStr := res.Timestamp.Format("Jan 02, 2006 15:04")

		var accuracy float64
		if res.Total > 0 {
			accuracy = float64(res.Score) / float64(res.Total) * 100
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-6s  %d/%d  %.0f%%",
			prefix, dateStr, res.Mode, res.Score, res.Total, accuracy)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
