package extract

import (
	"strings"

	"github.com/mgarcia/palabra/internal/content"
)

// nonFiniteTenses are table rows that are not person-conjugated and are
// excluded from mixed-balanced quizzes.
var nonFiniteTenses = map[string]bool{
	"Infinitive": true,
	"Gerund":     true,
	"Participle": true,
}

// Extract derives the full fact list for a document. Conjugation facts
// come first, then vocabulary-like facts, matching the scan order used
// for explanation lookup. Malformed rows and items are skipped.
func Extract(doc *content.Document, mode content.Mode) []Fact {
	var facts []Fact
	for _, sec := range doc.Sections {
		collectConjugations(sec, mode, &facts)
	}
	for _, sec := range doc.Sections {
		collectVocabulary(sec, sec.Title, &facts)
	}
	return facts
}

// collectConjugations walks a section and its subsections for verb
// tables. The verb name comes from the owning section's title: second
// word when present ("Verb SER" → SER), otherwise the first.
func collectConjugations(sec content.Section, mode content.Mode, facts *[]Fact) {
	verb := verbFromTitle(sec.Title)
	if verb != "" {
		for _, tbl := range sec.Tables {
			for _, row := range tbl.Rows {
				tense := strings.TrimSpace(row.Tense)
				if tense == "" {
					continue
				}
				if mode == content.ModeMixedBalanced && nonFiniteTenses[tense] {
					continue
				}
				for i, conj := range row.Conjugations {
					parts := strings.Fields(conj)
					if len(parts) < 2 {
						continue // pronoun-less cell, nothing to strip
					}
					person := "unknown"
					if i < len(Persons) {
						person = Persons[i]
					}
					form := strings.Join(parts[1:], " ")
					*facts = append(*facts, Fact{
						Category: sec.Title,
						Type:     Conjugation,
						Prompt:   verb,
						Answer:   form,
						Meta:     &ConjMeta{Verb: verb, Person: person, Tense: tense},
					})
				}
			}
		}
	}

	for _, sub := range sec.Subsections {
		collectConjugations(sub, mode, facts)
	}
}

// collectVocabulary walks items, attributing nested items to the
// top-level section so balancing sees only top-level categories.
func collectVocabulary(sec content.Section, topTitle string, facts *[]Fact) {
	for _, it := range sec.Items {
		en := strings.TrimSpace(it.English)
		es := strings.TrimSpace(it.Spanish)
		if en == "" || es == "" {
			continue
		}
		t, ok := classify(topTitle, sec.Title, en, es)
		if !ok {
			continue
		}
		*facts = append(*facts, Fact{
			Category: topTitle,
			Type:     t,
			Prompt:   en,
			Answer:   es,
		})
	}

	for _, sub := range sec.Subsections {
		collectVocabulary(sub, topTitle, facts)
	}
}

// classify decides the balancing category of a vocabulary item. Items
// under the dedicated power-verb category that match no verb stem are
// dropped rather than double-counted as plain vocabulary.
func classify(topTitle, subTitle, en, es string) (Type, bool) {
	switch {
	case strings.Contains(topTitle, "Survival"):
		return Survival, true
	case strings.Contains(subTitle, "Common Verbs"),
		strings.Contains(subTitle, "Verbs"),
		matchesPowerVerb(en) || matchesPowerVerb(es):
		return PowerVerb, true
	case !strings.Contains(topTitle, "Week 1 Power verbs"):
		return Vocabulary, true
	}
	return 0, false
}

func matchesPowerVerb(text string) bool {
	lower := strings.ToLower(text)
	for _, stem := range powerVerbStems {
		if strings.Contains(lower, stem) {
			return true
		}
	}
	return false
}

// verbFromTitle extracts the verb a table section drills: the second
// word of the title, or the first when the title is a single word.
func verbFromTitle(title string) string {
	fields := strings.Fields(title)
	switch {
	case len(fields) >= 2:
		return fields[1]
	case len(fields) == 1:
		return fields[0]
	}
	return ""
}

// ByType partitions facts into per-type pools.
func ByType(facts []Fact) map[Type][]Fact {
	pools := make(map[Type][]Fact)
	for _, f := range facts {
		pools[f.Type] = append(pools[f.Type], f)
	}
	return pools
}
