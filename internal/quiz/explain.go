package quiz

import (
	"fmt"
	"strings"

	"github.com/mgarcia/palabra/internal/extract"
)

// Explain describes what a wrongly chosen option actually means, by
// scanning the fact corpus for the option text. Conjugation forms are
// explained grammatically; vocabulary by its English gloss. Returns ""
// when the option matches nothing.
func Explain(option string, facts []extract.Fact) string {
	for _, f := range facts {
		if f.Answer != option {
			continue
		}
		if f.Type == extract.Conjugation && f.Meta != nil {
			return fmt.Sprintf("%q would be the conjugation for %s in %s.",
				option, f.Meta.Person, strings.ToLower(f.Meta.Tense))
		}
		return fmt.Sprintf("%q means %q.", option, f.Prompt)
	}
	return ""
}
