// Package browse is the word-list screen: searchable categories with
// an inline form for adding personal vocabulary.
package browse

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mgarcia/palabra/internal/content"
	"github.com/mgarcia/palabra/internal/router"
	"github.com/mgarcia/palabra/internal/screen"
	"github.com/mgarcia/palabra/internal/search"
	"github.com/mgarcia/palabra/internal/store"
	"github.com/mgarcia/palabra/internal/ui/components"
	"github.com/mgarcia/palabra/internal/ui/layout"
	"github.com/mgarcia/palabra/internal/ui/theme"
	"github.com/mgarcia/palabra/internal/vocab"
)

type browseMode int

const (
	modeList browseMode = iota
	modeSearch
	modeAdd
)

type entrySavedMsg struct {
	entry vocab.Entry
	cat   string
	err   error
}

// BrowseScreen shows the study page's categories and items.
type BrowseScreen struct {
	doc      *content.Document
	filtered *content.Document
	entries  *store.EntryRepo

	mode     browseMode
	query    components.TextInput
	selected int
	expanded map[string]bool

	form      [3]components.TextInput // category, english, spanish
	formFocus int
	notice    string
}

var _ screen.Screen = (*BrowseScreen)(nil)
var _ screen.KeyHintProvider = (*BrowseScreen)(nil)

// New creates a new BrowseScreen over the merged document.
func New(doc *content.Document, entries *store.EntryRepo) *BrowseScreen {
	s := &BrowseScreen{
		doc:      doc,
		filtered: doc,
		entries:  entries,
		query:    components.NewTextInput("", "search words…", 40),
		expanded: make(map[string]bool),
	}
	s.form[0] = components.NewTextInput("Category", "e.g. My Words", 40)
	s.form[1] = components.NewTextInput("English", "", 60)
	s.form[2] = components.NewTextInput("Spanish", "", 60)
	return s
}

func (s *BrowseScreen) Init() tea.Cmd {
	return nil
}

func (s *BrowseScreen) Title() string {
	return "Browse"
}

func (s *BrowseScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeSearch:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Clear"},
		}
	case modeAdd:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Expand"},
		{Key: "/", Description: "Search"},
		{Key: "A", Description: "Add word"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if saved, ok := msg.(entrySavedMsg); ok {
		if saved.err != nil {
			s.notice = "could not save: " + saved.err.Error()
			return s, nil
		}
		vocab.MergeInto(s.doc, &vocab.Extras{Categories: []vocab.Category{
			{Title: saved.cat, Items: []vocab.Entry{saved.entry}},
		}})
		s.refilter()
		s.expanded[saved.cat] = true
		s.notice = fmt.Sprintf("added %q to %s", saved.entry.Spanish, saved.cat)
		return s, nil
	}

	switch s.mode {
	case modeSearch:
		return s.updateSearch(msg)
	case modeAdd:
		return s.updateAdd(msg)
	}
	return s.updateList(msg)
}

func (s *BrowseScreen) updateList(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		if s.query.Value() != "" {
			s.query.Reset()
			s.refilter()
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.filtered.Sections)-1 {
			s.selected++
		}
	case "enter", " ":
		if s.selected < len(s.filtered.Sections) {
			title := s.filtered.Sections[s.selected].Title
			s.expanded[title] = !s.expanded[title]
		}
	case "/":
		s.mode = modeSearch
		s.notice = ""
		return s, s.query.Init()
	case "a":
		s.mode = modeAdd
		s.notice = ""
		s.formFocus = 0
		for i := range s.form {
			s.form[i].Reset()
			s.form[i].Model.Blur()
		}
		return s, s.form[0].Init()
	}
	return s, nil
}

func (s *BrowseScreen) updateSearch(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			s.mode = modeList
			s.query.Model.Blur()
			return s, nil
		case "esc":
			s.mode = modeList
			s.query.Reset()
			s.query.Model.Blur()
			s.refilter()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.query, cmd = s.query.Update(msg)
	s.refilter()
	return s, cmd
}

func (s *BrowseScreen) updateAdd(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			s.mode = modeList
			s.form[s.formFocus].Model.Blur()
			return s, nil
		case "tab", "shift+tab", "down", "up":
			s.form[s.formFocus].Model.Blur()
			if kmsg.String() == "shift+tab" || kmsg.String() == "up" {
				s.formFocus = (s.formFocus + 2) % 3
			} else {
				s.formFocus = (s.formFocus + 1) % 3
			}
			return s, s.form[s.formFocus].Init()
		case "enter":
			return s, s.saveEntry()
		}
	}

	var cmd tea.Cmd
	s.form[s.formFocus], cmd = s.form[s.formFocus].Update(msg)
	return s, cmd
}

func (s *BrowseScreen) saveEntry() tea.Cmd {
	cat := s.form[0].Value()
	if cat == "" {
		cat = "My Words"
	}
	en := s.form[1].Value()
	es := s.form[2].Value()

	s.form[1].Submit(en != "")
	s.form[2].Submit(es != "")
	if en == "" || es == "" {
		return nil
	}

	s.mode = modeList
	s.form[s.formFocus].Model.Blur()

	entries := s.entries
	return func() tea.Msg {
		saved := entrySavedMsg{entry: vocab.Entry{English: en, Spanish: es}, cat: cat}
		if entries != nil {
			_, saved.err = entries.Add(context.Background(), cat, en, es)
		}
		return saved
	}
}

func (s *BrowseScreen) refilter() {
	s.filtered = search.Filter(s.doc, s.query.Value())
	if s.selected >= len(s.filtered.Sections) {
		s.selected = 0
	}
	// Search results read better fully opened.
	if s.query.Value() != "" {
		for _, sec := range s.filtered.Sections {
			s.expanded[sec.Title] = true
		}
	}
}

func (s *BrowseScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	if s.mode == modeSearch || s.query.Value() != "" {
		b.WriteString("  " + s.query.View() + "\n\n")
	}

	if s.mode == modeAdd {
		var form strings.Builder
		form.WriteString(theme.Body.Bold(true).Render("Add a word") + "\n\n")
		for i := range s.form {
			form.WriteString(s.form[i].View() + "\n")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Card.Render(form.String())))
		b.WriteString("\n\n")
	}

	if s.notice != "" {
		b.WriteString("  " + theme.Hint.Render(s.notice) + "\n\n")
	}

	if len(s.filtered.Sections) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No matches."))
		return b.String()
	}

	for i, sec := range s.filtered.Sections {
		s.renderSection(&b, sec, i == s.selected, s.expanded[sec.Title], 0)
	}

	return clipLines(b.String(), s.selected, height)
}

func (s *BrowseScreen) renderSection(b *strings.Builder, sec content.Section, selected, expanded bool, depth int) {
	indent := strings.Repeat("  ", depth+1)

	marker := "▸"
	if expanded {
		marker = "▾"
	}
	titleStyle := theme.Unselected
	if selected {
		titleStyle = theme.Selected
	}
	b.WriteString(fmt.Sprintf("%s%s %s\n", indent,
		titleStyle.Render(marker+" "+sec.Title),
		theme.Hint.Render(fmt.Sprintf("(%d)", sec.ItemCount()))))

	if !expanded {
		return
	}

	for _, it := range sec.Items {
		b.WriteString(fmt.Sprintf("%s    %s %s\n", indent,
			theme.Body.Render(it.English+" —"),
			theme.Spanish.Render(it.Spanish)))
	}
	for _, tbl := range sec.Tables {
		for _, row := range tbl.Rows {
			b.WriteString(fmt.Sprintf("%s    %s %s\n", indent,
				theme.Hint.Render(row.Tense+":"),
				theme.Spanish.Render(strings.Join(row.Conjugations, " · "))))
		}
	}
	for _, sub := range sec.Subsections {
		s.renderSection(b, sub, false, true, depth+1)
	}
}

// clipLines windows the rendered list so the selected section stays
// visible on short terminals.
func clipLines(rendered string, selected, height int) string {
	lines := strings.Split(rendered, "\n")
	if len(lines) <= height || height <= 0 {
		return rendered
	}

	// Keep the selected section's heading within the window.
	start := 0
	if selected > 2 {
		start = selected - 2
	}
	if start+height > len(lines) {
		start = len(lines) - height
	}
	if start < 0 {
		start = 0
	}
	return strings.Join(lines[start:start+height], "\n")
}
