package content

import (
	"bytes"
	"strings"
	"testing"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Week 1 — Spanish</title></head>
<body>
<section id="categories">
  <details class="category parent">
    <summary><span class="category-title">Greetings</span></summary>
    <details class="category">
      <summary><span class="category-title">Basic Greetings</span></summary>
      <ul class="items">
        <li class="item" data-en="hello" data-es="hola"></li>
        <li class="item" data-en="goodbye" data-es="adiós"></li>
      </ul>
    </details>
  </details>
  <details class="category">
    <summary><span class="category-title">Survival Phrases</span></summary>
    <ul class="items">
      <li class="item"><span class="en">please</span><span class="arrow">›</span><span class="es">por favor</span></li>
      <li class="item"><span class="en">thank you</span></li>
    </ul>
  </details>
  <details class="category">
    <summary><span class="category-title">Verb SER</span></summary>
    <table>
      <tbody>
        <tr><td>Present</td><td>
          <span class="conjugation">yo soy</span>
          <span class="conjugation">vos sos</span>
          <span class="conjugation">él/ella es</span>
        </td></tr>
        <tr><td>Infinitive</td><td><span class="conjugation">ser</span></td></tr>
        <tr><td>Broken row</td></tr>
      </tbody>
    </table>
  </details>
</section>
</body>
</html>`

func TestParsePage(t *testing.T) {
	doc, err := Parse(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if doc.Title != "Week 1 — Spanish" {
		t.Errorf("Title = %q", doc.Title)
	}
	if len(doc.Sections) != 3 {
		t.Fatalf("sections = %d, want 3", len(doc.Sections))
	}

	greetings := doc.Sections[0]
	if greetings.Title != "Greetings" {
		t.Errorf("section 0 title = %q", greetings.Title)
	}
	if len(greetings.Items) != 0 {
		t.Errorf("parent category should own no direct items, got %d", len(greetings.Items))
	}
	if len(greetings.Subsections) != 1 {
		t.Fatalf("subsections = %d, want 1", len(greetings.Subsections))
	}
	basic := greetings.Subsections[0]
	if basic.Title != "Basic Greetings" {
		t.Errorf("subsection title = %q", basic.Title)
	}
	if len(basic.Items) != 2 || basic.Items[1].Spanish != "adiós" {
		t.Errorf("subsection items = %+v", basic.Items)
	}
}

func TestParseLabelConvention(t *testing.T) {
	doc, err := Parse(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	survival := doc.Sections[1]
	// The span-labelled item parses; the one missing its .es label is skipped.
	if len(survival.Items) != 1 {
		t.Fatalf("survival items = %d, want 1", len(survival.Items))
	}
	if survival.Items[0].English != "please" || survival.Items[0].Spanish != "por favor" {
		t.Errorf("item = %+v", survival.Items[0])
	}
}

func TestParseVerbTable(t *testing.T) {
	doc, err := Parse(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	ser := doc.Sections[2]
	if len(ser.Tables) != 1 {
		t.Fatalf("tables = %d, want 1", len(ser.Tables))
	}
	rows := ser.Tables[0].Rows
	// The broken row has no forms cell and is dropped.
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Tense != "Present" {
		t.Errorf("tense = %q", rows[0].Tense)
	}
	want := []string{"yo soy", "vos sos", "él/ella es"}
	if len(rows[0].Conjugations) != len(want) {
		t.Fatalf("conjugations = %v", rows[0].Conjugations)
	}
	for i, c := range want {
		if rows[0].Conjugations[i] != c {
			t.Errorf("conjugation[%d] = %q, want %q", i, rows[0].Conjugations[i], c)
		}
	}
}

func TestWriteHTMLRoundTrip(t *testing.T) {
	doc := &Document{
		Title: "Export Test",
		Sections: []Section{
			{
				Title: "Food",
				Items: []Item{{English: "bread", Spanish: "pan"}, {English: "water", Spanish: "agua"}},
			},
			{
				Title: "Verb ESTAR",
				Tables: []VerbTable{{Rows: []TableRow{
					{Tense: "Present", Conjugations: []string{"yo estoy", "vos estás"}},
				}}},
			},
		},
	}

	var buf bytes.Buffer
	if err := WriteHTML(doc, &buf); err != nil {
		t.Fatalf("write: %v", err)
	}

	parsed, err := Parse(&buf)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if parsed.Title != doc.Title {
		t.Errorf("Title = %q", parsed.Title)
	}
	if len(parsed.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(parsed.Sections))
	}
	if len(parsed.Sections[0].Items) != 2 || parsed.Sections[0].Items[0].Spanish != "pan" {
		t.Errorf("items = %+v", parsed.Sections[0].Items)
	}
	rows := parsed.Sections[1].Tables[0].Rows
	if len(rows) != 1 || rows[0].Conjugations[1] != "vos estás" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestItemCount(t *testing.T) {
	sec := Section{
		Items: []Item{{}, {}},
		Subsections: []Section{
			{Items: []Item{{}}},
		},
	}
	if got := sec.ItemCount(); got != 3 {
		t.Errorf("ItemCount = %d, want 3", got)
	}
}
