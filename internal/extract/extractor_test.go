package extract

import (
	"testing"

	"github.com/mgarcia/palabra/internal/content"
)

func vocabDoc() *content.Document {
	return &content.Document{
		Title: "Week 1 — Spanish",
		Sections: []content.Section{
			{
				Title: "Survival Phrases",
				Items: []content.Item{
					{English: "please", Spanish: "por favor"},
					{English: "thank you", Spanish: "gracias"},
				},
			},
			{
				Title: "Around Town",
				Items: []content.Item{
					{English: "the street", Spanish: "la calle"},
				},
				Subsections: []content.Section{
					{
						Title: "Places",
						Items: []content.Item{
							{English: "the market", Spanish: "el mercado"},
						},
					},
					{
						Title: "Common Verbs",
						Items: []content.Item{
							{English: "to run", Spanish: "correr"},
						},
					},
				},
			},
			{
				Title: "Week 1 Power verbs",
				Items: []content.Item{
					{English: "to want", Spanish: "querer"},
					{English: "perhaps", Spanish: "quizás"},
				},
			},
		},
	}
}

func conjDoc() *content.Document {
	return &content.Document{
		Sections: []content.Section{
			{
				Title: "Verb SER",
				Tables: []content.VerbTable{{Rows: []content.TableRow{
					{Tense: "Present", Conjugations: []string{"yo soy", "vos sos", "él/ella es", "nosotros somos", "ustedes/ellos son"}},
					{Tense: "Infinitive", Conjugations: []string{"ser"}},
				}}},
			},
		},
	}
}

func factsOfType(facts []Fact, t Type) []Fact {
	var out []Fact
	for _, f := range facts {
		if f.Type == t {
			out = append(out, f)
		}
	}
	return out
}

func TestExtractCategoryAttribution(t *testing.T) {
	facts := Extract(vocabDoc(), content.ModeMixedBalanced)

	var market *Fact
	for i := range facts {
		if facts[i].Prompt == "the market" {
			market = &facts[i]
		}
	}
	if market == nil {
		t.Fatal("nested item not extracted")
	}
	if market.Category != "Around Town" {
		t.Errorf("nested item category = %q, want top-level %q", market.Category, "Around Town")
	}
	if market.Type != Vocabulary {
		t.Errorf("type = %v, want Vocabulary", market.Type)
	}
}

func TestExtractClassification(t *testing.T) {
	facts := Extract(vocabDoc(), content.ModeMixedBalanced)

	if n := len(factsOfType(facts, Survival)); n != 2 {
		t.Errorf("survival facts = %d, want 2", n)
	}

	// "to run" sits under a "Common Verbs" subsection; "to want"/"querer"
	// match a power-verb stem directly.
	power := factsOfType(facts, PowerVerb)
	if len(power) != 2 {
		t.Fatalf("power-verb facts = %d (%+v), want 2", len(power), power)
	}

	// "perhaps"/"quizás" lives under the power-verb category but matches
	// no stem: it must not leak into plain vocabulary.
	for _, f := range facts {
		if f.Prompt == "perhaps" {
			t.Errorf("power-verb category item misclassified as %v", f.Type)
		}
	}
}

func TestExtractConjugations(t *testing.T) {
	facts := Extract(conjDoc(), content.ModeMixedBalanced)
	conj := factsOfType(facts, Conjugation)

	if len(conj) != 5 {
		t.Fatalf("conjugation facts = %d, want 5 (infinitive row skipped)", len(conj))
	}

	first := conj[0]
	if first.Answer != "soy" {
		t.Errorf("answer = %q, want pronoun-stripped %q", first.Answer, "soy")
	}
	if first.Meta == nil || first.Meta.Verb != "SER" || first.Meta.Person != "yo" || first.Meta.Tense != "Present" {
		t.Errorf("meta = %+v", first.Meta)
	}
	if conj[2].Meta.Person != "él/ella" {
		t.Errorf("person[2] = %q, want él/ella", conj[2].Meta.Person)
	}
	if conj[4].Meta.Person != "ustedes/ellos" {
		t.Errorf("person[4] = %q", conj[4].Meta.Person)
	}
}

func TestExtractNonFiniteFilter(t *testing.T) {
	doc := &content.Document{
		Sections: []content.Section{
			{
				Title: "Verb HABLAR",
				Tables: []content.VerbTable{{Rows: []content.TableRow{
					{Tense: "Present", Conjugations: []string{"yo hablo", "vos hablás"}},
					{Tense: "Gerund", Conjugations: []string{"estoy hablando", "estás hablando"}},
				}}},
			},
		},
	}

	mixed := factsOfType(Extract(doc, content.ModeMixedBalanced), Conjugation)
	if len(mixed) != 2 {
		t.Errorf("mixed mode facts = %d, want gerund row dropped (2)", len(mixed))
	}

	single := factsOfType(Extract(doc, content.ModeSinglePool), Conjugation)
	if len(single) != 4 {
		t.Errorf("single mode facts = %d, want gerund row kept (4)", len(single))
	}

	// The "Infinitive" row of a bare single-cell table never yields facts
	// in either mode: there is no pronoun to strip.
	facts := Extract(conjDoc(), content.ModeSinglePool)
	if n := len(factsOfType(facts, Conjugation)); n != 5 {
		t.Errorf("conjugation facts = %d, want 5", n)
	}
}

func TestExtractSkipsMalformed(t *testing.T) {
	doc := &content.Document{
		Sections: []content.Section{
			{
				Title: "Sparse",
				Items: []content.Item{
					{English: "only english"},
					{Spanish: "solo español"},
					{English: " ", Spanish: "algo"},
				},
			},
		},
	}
	if facts := Extract(doc, content.ModeMixedBalanced); len(facts) != 0 {
		t.Errorf("extracted %d facts from malformed items, want 0", len(facts))
	}
}

func TestVerbFromTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Verb SER", "SER"},
		{"HABLAR", "HABLAR"},
		{"Verb ESTAR (to be)", "ESTAR"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := verbFromTitle(tt.title); got != tt.want {
			t.Errorf("verbFromTitle(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestByType(t *testing.T) {
	facts := Extract(vocabDoc(), content.ModeMixedBalanced)
	pools := ByType(facts)
	total := 0
	for _, pool := range pools {
		total += len(pool)
	}
	if total != len(facts) {
		t.Errorf("partition lost facts: %d != %d", total, len(facts))
	}
}
