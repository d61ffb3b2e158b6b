// Package search filters study-page content with case- and
// diacritic-insensitive substring matching.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/mgarcia/palabra/internal/content"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases text and strips combining marks, so "QuizÁs"
// matches "quizas".
func Normalize(s string) string {
	folded, _, err := transform.String(foldTransformer, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}

func matches(text, query string) bool {
	return strings.Contains(Normalize(text), query)
}

// Filter returns a copy of doc reduced to the sections and items that
// match the query. A matching section title keeps the whole section.
// An empty or blank query returns the document unchanged.
func Filter(doc *content.Document, query string) *content.Document {
	query = Normalize(strings.TrimSpace(query))
	if query == "" {
		return doc
	}

	out := &content.Document{Title: doc.Title}
	for _, sec := range doc.Sections {
		if filtered, ok := filterSection(sec, query); ok {
			out.Sections = append(out.Sections, filtered)
		}
	}
	return out
}

func filterSection(sec content.Section, query string) (content.Section, bool) {
	if matches(sec.Title, query) {
		return sec, true
	}

	out := content.Section{Title: sec.Title, Tables: sec.Tables}
	for _, it := range sec.Items {
		if matches(it.English, query) || matches(it.Spanish, query) {
			out.Items = append(out.Items, it)
		}
	}
	for _, sub := range sec.Subsections {
		if filtered, ok := filterSection(sub, query); ok {
			out.Subsections = append(out.Subsections, filtered)
		}
	}
	if len(out.Items) == 0 && len(out.Subsections) == 0 {
		return content.Section{}, false
	}
	return out, true
}
