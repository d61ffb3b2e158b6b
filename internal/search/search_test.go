package search

import (
	"testing"

	"github.com/mgarcia/palabra/internal/content"
)

func sampleDoc() *content.Document {
	return &content.Document{
		Title: "Week 1",
		Sections: []content.Section{
			{
				Title: "Greetings",
				Items: []content.Item{
					{English: "hello", Spanish: "hola"},
					{English: "goodbye", Spanish: "adiós"},
				},
			},
			{
				Title: "Food",
				Items: []content.Item{
					{English: "the bread", Spanish: "el pan"},
				},
				Subsections: []content.Section{
					{
						Title: "Drinks",
						Items: []content.Item{
							{English: "the coffee", Spanish: "el café"},
						},
					},
				},
			},
		},
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"QuizÁs", "quizas"},
		{"adiós", "adios"},
		{"él/ella", "el/ella"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFilterDiacriticInsensitive(t *testing.T) {
	doc := Filter(sampleDoc(), "adios")
	if len(doc.Sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(doc.Sections))
	}
	items := doc.Sections[0].Items
	if len(items) != 1 || items[0].Spanish != "adiós" {
		t.Errorf("items = %+v", items)
	}
}

func TestFilterTitleMatchKeepsSection(t *testing.T) {
	doc := Filter(sampleDoc(), "greet")
	if len(doc.Sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(doc.Sections))
	}
	if len(doc.Sections[0].Items) != 2 {
		t.Errorf("title match dropped items: %+v", doc.Sections[0].Items)
	}
}

func TestFilterNestedItems(t *testing.T) {
	doc := Filter(sampleDoc(), "café")
	if len(doc.Sections) != 1 || doc.Sections[0].Title != "Food" {
		t.Fatalf("sections = %+v", doc.Sections)
	}
	sec := doc.Sections[0]
	if len(sec.Items) != 0 {
		t.Errorf("unmatched direct items kept: %+v", sec.Items)
	}
	if len(sec.Subsections) != 1 || len(sec.Subsections[0].Items) != 1 {
		t.Errorf("subsections = %+v", sec.Subsections)
	}
}

func TestFilterEmptyQuery(t *testing.T) {
	orig := sampleDoc()
	if doc := Filter(orig, "  "); doc != orig {
		t.Error("blank query should return the document unchanged")
	}
}

func TestFilterNoMatch(t *testing.T) {
	if doc := Filter(sampleDoc(), "zzz"); len(doc.Sections) != 0 {
		t.Errorf("sections = %+v, want none", doc.Sections)
	}
}
