// Package quiz hosts the quiz screen: it drives a quiz session and
// renders the current question through the multi-choice component.
package quiz

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mgarcia/palabra/internal/content"
	"github.com/mgarcia/palabra/internal/extract"
	quizcore "github.com/mgarcia/palabra/internal/quiz"
	"github.com/mgarcia/palabra/internal/router"
	"github.com/mgarcia/palabra/internal/screen"
	"github.com/mgarcia/palabra/internal/screens/summary"
	"github.com/mgarcia/palabra/internal/store"
	"github.com/mgarcia/palabra/internal/ui/components"
	"github.com/mgarcia/palabra/internal/ui/layout"
	"github.com/mgarcia/palabra/internal/ui/theme"
)

type resultSavedMsg struct {
	err error
}

// QuizScreen runs one quiz session.
type QuizScreen struct {
	doc     *content.Document
	mode    content.Mode
	rng     *rand.Rand
	quizzes *store.QuizRepo

	session *quizcore.Session
	facts   []extract.Fact
	mc      components.MultiChoice
	saveErr string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a quiz screen over the document. The session starts on
// Init so a restart from the summary gets a fresh question sequence.
func New(doc *content.Document, mode content.Mode, rng *rand.Rand, quizzes *store.QuizRepo) *QuizScreen {
	facts := extract.Extract(doc, mode)
	return &QuizScreen{
		doc:     doc,
		mode:    mode,
		rng:     rng,
		quizzes: quizzes,
		facts:   facts,
		session: quizcore.NewSession(facts, mode, rng),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	s.session.Start()
	s.loadQuestion()
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Status() string {
	if s.session.State() != quizcore.InProgress {
		return s.mode.String()
	}
	return fmt.Sprintf("%d/%d · %s", s.session.Index()+1, s.session.Total(), s.mode)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.session.Answered() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Quit quiz"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "A-H", Description: "Pick"},
		{Key: "Esc", Description: "Quit quiz"},
	}
}

func (s *QuizScreen) loadQuestion() {
	q := s.session.Current()
	if q == nil {
		return
	}
	s.mc = components.NewMultiChoice(q.Prompt, s.session.Options())
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultSavedMsg:
		if msg.err != nil {
			s.saveErr = msg.err.Error()
		}
		return s, nil

	case tea.KeyMsg:
		if s.session.State() != quizcore.InProgress {
			return s, nil
		}

		key := msg.String()
		switch {
		case key == "enter":
			if s.session.Answered() {
				return s, s.advance()
			}
			s.answer(s.mc.Selected)
			return s, nil

		case len(key) == 1 && key[0] >= '1' && key[0] <= '8':
			if !s.session.Answered() {
				s.answer(int(key[0] - '1'))
			}
			return s, nil

		case len(key) == 1 && key[0] >= 'a' && key[0] <= 'h':
			if !s.session.Answered() {
				s.answer(int(key[0] - 'a'))
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)
	return s, cmd
}

func (s *QuizScreen) answer(i int) {
	if i < 0 || i >= len(s.session.Options()) {
		return
	}
	s.session.Answer(i)
	s.mc.Lock(s.session.Options())
}

// advance moves to the next question, or finishes: persist the result
// and swap in the summary screen.
func (s *QuizScreen) advance() tea.Cmd {
	s.session.Advance()
	if s.session.State() != quizcore.Finished {
		s.loadQuestion()
		return nil
	}

	score, total := s.session.Score(), s.session.Total()
	result := store.QuizResult{
		SessionID: s.session.ID().String(),
		Mode:      s.mode.String(),
		Score:     score,
		Total:     total,
	}

	cmds := []tea.Cmd{
		func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: summary.New(score, total, func() screen.Screen {
					return New(s.doc, s.mode, s.rng, s.quizzes)
				}),
			}
		},
	}
	if s.quizzes != nil {
		repo := s.quizzes
		cmds = append(cmds, func() tea.Msg {
			return resultSavedMsg{err: repo.Append(context.Background(), result)}
		})
	}
	return tea.Batch(cmds...)
}

func (s *QuizScreen) View(width, height int) string {
	if s.session.State() == quizcore.Empty {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing to quiz on this page. Add some words first!")
	}
	if s.session.State() != quizcore.InProgress {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", s.session.Index()+1, s.session.Total()),
		float64(s.session.Index())/float64(s.session.Total()),
		false,
		min(width-8, 60),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, progress.View()))
	b.WriteString("\n\n")

	card := theme.Card.Width(min(width-4, 72)).Render(s.mc.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n")

	if s.session.Answered() {
		if exp := s.session.Explanation(); exp != "" {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Hint.Render(exp)))
			b.WriteString("\n")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Subtitle.Render(fmt.Sprintf("Score: %d", s.session.Score()))))
		b.WriteString("\n")
	}

	if s.saveErr != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render("could not save result: "+s.saveErr)))
	}

	return b.String()
}
