// Package vocab reads and writes personal vocabulary as JSON and
// merges it into study-page content.
package vocab

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mgarcia/palabra/internal/content"
)

// Extras is the portable shape for user-added vocabulary.
type Extras struct {
	Categories []Category `json:"categories"`
}

// Category groups entries under a display title.
type Category struct {
	Title string  `json:"title"`
	Items []Entry `json:"items"`
}

// Entry is one English/Spanish pair.
type Entry struct {
	English string `json:"en"`
	Spanish string `json:"es"`
}

// Parse decodes and validates an extras document. Validation failures
// name the offending location.
func Parse(data []byte) (*Extras, error) {
	if err := validate(data); err != nil {
		return nil, fmt.Errorf("vocab: %w", err)
	}
	var extras Extras
	if err := json.Unmarshal(data, &extras); err != nil {
		return nil, fmt.Errorf("vocab: decode: %w", err)
	}
	return &extras, nil
}

// Marshal renders extras as indented JSON suitable for files.
func Marshal(extras *Extras) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(extras); err != nil {
		return nil, fmt.Errorf("vocab: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// MergeInto appends the extras to doc, folding into an existing
// section when a category title already exists and creating a new
// top-level section otherwise.
func MergeInto(doc *content.Document, extras *Extras) {
	for _, cat := range extras.Categories {
		items := make([]content.Item, 0, len(cat.Items))
		for _, e := range cat.Items {
			if e.English == "" || e.Spanish == "" {
				continue
			}
			items = append(items, content.Item{English: e.English, Spanish: e.Spanish})
		}
		if len(items) == 0 {
			continue
		}
		if sec := findSection(doc, cat.Title); sec != nil {
			sec.Items = append(sec.Items, items...)
			continue
		}
		doc.Sections = append(doc.Sections, content.Section{Title: cat.Title, Items: items})
	}
}

func findSection(doc *content.Document, title string) *content.Section {
	for i := range doc.Sections {
		if doc.Sections[i].Title == title {
			return &doc.Sections[i]
		}
	}
	return nil
}
