// Package home is the landing screen: menu plus study-material stats.
package home

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mgarcia/palabra/internal/content"
	"github.com/mgarcia/palabra/internal/extract"
	"github.com/mgarcia/palabra/internal/router"
	"github.com/mgarcia/palabra/internal/screen"
	"github.com/mgarcia/palabra/internal/screens/browse"
	"github.com/mgarcia/palabra/internal/screens/history"
	quizscreen "github.com/mgarcia/palabra/internal/screens/quiz"
	"github.com/mgarcia/palabra/internal/store"
	"github.com/mgarcia/palabra/internal/ui/components"
	"github.com/mgarcia/palabra/internal/ui/theme"
)

// Options carries the shared app state into the home screen.
type Options struct {
	Doc     *content.Document
	Mode    content.Mode
	Entries *store.EntryRepo
	Quizzes *store.QuizRepo
}

type statsLoadedMsg struct {
	stats store.Stats
	err   error
}

// HomeScreen is the main entry screen of the application.
type HomeScreen struct {
	opts      Options
	menu      components.Menu
	factCount int
	stats     store.Stats
	haveStats bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	facts := extract.Extract(opts.Doc, opts.Mode)

	items := []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				rng := rand.New(rand.NewSource(time.Now().UnixNano()))
				return router.PushScreenMsg{
					Screen: quizscreen.New(opts.Doc, opts.Mode, rng, opts.Quizzes),
				}
			}
		}},
		{Label: "BROWSE WORDS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: browse.New(opts.Doc, opts.Entries)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(opts.Quizzes)}
			}
		}, Disabled: opts.Quizzes == nil},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		opts:      opts,
		menu:      components.NewMenu(items),
		factCount: len(facts),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	if h.opts.Quizzes == nil {
		return nil
	}
	repo := h.opts.Quizzes
	return func() tea.Msg {
		stats, err := repo.Totals(context.Background())
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if loaded, ok := msg.(statsLoadedMsg); ok {
		if loaded.err == nil {
			h.stats = loaded.stats
			h.haveStats = true
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("¡ P A L A B R A !"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(h.opts.Doc.Title))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("%d things to learn · %s mode", h.factCount, h.opts.Mode)
	if h.haveStats && h.stats.Quizzes > 0 {
		statsLine += fmt.Sprintf(" · %d quizzes · %.0f%% accuracy",
			h.stats.Quizzes, h.stats.Accuracy()*100)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(statsLine))
	b.WriteString("\n\n")

	menu := theme.Card.Render(h.menu.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
