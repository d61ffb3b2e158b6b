// Package content defines the read-only document model the quiz core and
// browser operate on, plus loaders that build it from study-page HTML.
package content

import "fmt"

// Mode selects how quiz questions are drawn from a document.
type Mode int

const (
	// ModeSinglePool builds one question per fact from a single typed pool
	// (verb-drill pages, plain vocabulary pages).
	ModeSinglePool Mode = iota

	// ModeMixedBalanced draws a category-balanced mix of conjugation,
	// survival, vocabulary, and power-verb questions.
	ModeMixedBalanced
)

func (m Mode) String() string {
	switch m {
	case ModeSinglePool:
		return "single"
	case ModeMixedBalanced:
		return "mixed"
	}
	return "unknown"
}

// ParseMode converts a CLI/config string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "single":
		return ModeSinglePool, nil
	case "mixed":
		return ModeMixedBalanced, nil
	}
	return 0, fmt.Errorf("unknown content mode %q (want single or mixed)", s)
}

// Document is a loaded study page: a titled list of category sections.
type Document struct {
	Title    string
	Sections []Section
}

// Section is one category. Categories nest at most one level deep in
// practice; quiz balancing attributes items of a subsection to the
// enclosing top-level section.
type Section struct {
	Title       string
	Items       []Item
	Tables      []VerbTable
	Subsections []Section
}

// Item is a single prompt/answer vocabulary pair.
type Item struct {
	English string
	Spanish string
}

// VerbTable holds the conjugation rows of one verb.
type VerbTable struct {
	Rows []TableRow
}

// TableRow is one tense row. Conjugations are the raw cell texts in
// person order, pronoun included (e.g. "yo hablo").
type TableRow struct {
	Tense        string
	Conjugations []string
}

// ItemCount returns the number of items in the section and all its
// subsections.
func (s Section) ItemCount() int {
	n := len(s.Items)
	for _, sub := range s.Subsections {
		n += sub.ItemCount()
	}
	return n
}
