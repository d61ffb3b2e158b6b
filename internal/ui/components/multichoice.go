package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mgarcia/palabra/internal/quiz"
	"github.com/mgarcia/palabra/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// MultiChoice renders a question with up to eight answer choices. The
// option flags (disabled/correct/incorrect) come from the quiz session;
// the component only handles cursor movement and presentation.
type MultiChoice struct {
	Prompt   string
	Options  []quiz.Option
	Selected int
	Locked   bool
}

// NewMultiChoice creates a selector for one question.
func NewMultiChoice(prompt string, options []quiz.Option) MultiChoice {
	return MultiChoice{
		Prompt:  prompt,
		Options: options,
	}
}

// Lock freezes the cursor and switches to feedback rendering, with the
// refreshed option flags from the answered question.
func (m *MultiChoice) Lock(options []quiz.Option) {
	m.Options = options
	m.Locked = true
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement. Choice submission is owned by the
// screen, which reads Selected.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Locked {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	}

	return m, nil
}

// View renders the prompt and the labelled choices.
func (m MultiChoice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Prompt) + "\n\n"

	for i, opt := range m.Options {
		label := "?"
		if i < len(optionLabels) {
			label = optionLabels[i]
		}
		prefix := "  "
		if i == m.Selected && !m.Locked {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt.Text)

		switch {
		case opt.Correct:
			s += theme.Correct.Render(line+"  ✓") + "\n"
		case opt.Incorrect:
			s += theme.Incorrect.Render(line+"  ✗") + "\n"
		case opt.Disabled:
			s += theme.Disabled.Render(line) + "\n"
		case i == m.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
