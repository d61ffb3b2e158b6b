package content

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Selectors for the study-page conventions. Categories are
// <details class="category"> elements; items carry their pair either as
// data-en/data-es attributes or as nested .en/.es labels.
var (
	selCategory    = cascadia.MustCompile("details.category")
	selTitle       = cascadia.MustCompile(".category-title")
	selItem        = cascadia.MustCompile("li.item")
	selTable       = cascadia.MustCompile("table")
	selRow         = cascadia.MustCompile("tbody tr")
	selCell        = cascadia.MustCompile("td")
	selConjugation = cascadia.MustCompile(".conjugation")
	selEnglish     = cascadia.MustCompile(".en")
	selSpanish     = cascadia.MustCompile(".es")
	selPageTitle   = cascadia.MustCompile("title")
)

// LoadFile parses the study page at path into a Document.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content file: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// Parse reads an HTML study page and builds the document model.
// Malformed fragments are skipped; Parse only fails on unreadable input.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	doc := &Document{}
	if t := selPageTitle.MatchFirst(root); t != nil {
		doc.Title = textOf(t)
	}

	for _, cat := range selCategory.MatchAll(root) {
		if closestCategory(cat.Parent) != nil {
			continue // subsection, handled by its parent
		}
		doc.Sections = append(doc.Sections, parseSection(cat))
	}
	return doc, nil
}

// parseSection builds a Section from a category node, recursing into
// directly nested categories.
func parseSection(cat *html.Node) Section {
	sec := Section{Title: ownedText(cat, selTitle)}

	for _, sub := range selCategory.MatchAll(cat) {
		if sub == cat || closestCategory(sub.Parent) != cat {
			continue
		}
		sec.Subsections = append(sec.Subsections, parseSection(sub))
	}

	for _, li := range selItem.MatchAll(cat) {
		if closestCategory(li.Parent) != cat {
			continue
		}
		if item, ok := parseItem(li); ok {
			sec.Items = append(sec.Items, item)
		}
	}

	for _, tbl := range selTable.MatchAll(cat) {
		if closestCategory(tbl.Parent) != cat {
			continue
		}
		if vt := parseTable(tbl); len(vt.Rows) > 0 {
			sec.Tables = append(sec.Tables, vt)
		}
	}

	return sec
}

// parseItem reads the prompt/answer pair from either convention.
// Items missing either half are rejected.
func parseItem(li *html.Node) (Item, bool) {
	en := strings.TrimSpace(attrOf(li, "data-en"))
	es := strings.TrimSpace(attrOf(li, "data-es"))

	if en == "" || es == "" {
		if n := selEnglish.MatchFirst(li); n != nil {
			en = textOf(n)
		}
		if n := selSpanish.MatchFirst(li); n != nil {
			es = textOf(n)
		}
	}

	if en == "" || es == "" {
		return Item{}, false
	}
	return Item{English: en, Spanish: es}, true
}

// parseTable reads tense rows. A row needs a tense cell and a forms
// cell; anything narrower is skipped.
func parseTable(tbl *html.Node) VerbTable {
	var vt VerbTable
	for _, tr := range selRow.MatchAll(tbl) {
		cells := selCell.MatchAll(tr)
		if len(cells) < 2 {
			continue
		}
		row := TableRow{Tense: textOf(cells[0])}
		for _, conj := range selConjugation.MatchAll(cells[1]) {
			if t := textOf(conj); t != "" {
				row.Conjugations = append(row.Conjugations, t)
			}
		}
		if len(row.Conjugations) > 0 {
			vt.Rows = append(vt.Rows, row)
		}
	}
	return vt
}

// closestCategory walks up from n to the nearest enclosing category
// element, or nil if there is none.
func closestCategory(n *html.Node) *html.Node {
	for ; n != nil; n = n.Parent {
		if n.Type == html.ElementNode && selCategory.Match(n) {
			return n
		}
	}
	return nil
}

// ownedText returns the text of the first node matching sel that belongs
// to this category and not to a nested one.
func ownedText(cat *html.Node, sel cascadia.Selector) string {
	for _, n := range sel.MatchAll(cat) {
		if closestCategory(n) == cat {
			return textOf(n)
		}
	}
	return ""
}

// textOf collects the text content of a node with whitespace collapsed.
func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// attrOf returns the value of the named attribute, or "".
func attrOf(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
