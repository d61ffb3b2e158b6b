package content

import (
	"fmt"
	"html"
	"io"
)

// WriteHTML serializes a document back into the study-page markup, so a
// merged page (built-in content plus personal entries) can be shared as
// a standalone file. Items are written attribute-style, which the parser
// also accepts.
func WriteHTML(doc *Document, w io.Writer) error {
	ew := &errWriter{w: w}

	ew.printf("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n", esc(doc.Title))
	ew.printf("<section id=\"categories\">\n")
	for _, sec := range doc.Sections {
		writeSection(ew, sec)
	}
	ew.printf("</section>\n</body>\n</html>\n")
	return ew.err
}

func writeSection(ew *errWriter, sec Section) {
	ew.printf("<details class=\"category\" open>\n<summary><span class=\"category-title\">%s</span></summary>\n", esc(sec.Title))

	if len(sec.Items) > 0 {
		ew.printf("<ul class=\"items\">\n")
		for _, it := range sec.Items {
			ew.printf("<li class=\"item\" data-en=\"%s\" data-es=\"%s\"><span class=\"en\">%s</span><span class=\"arrow\">›</span><span class=\"es\">%s</span></li>\n",
				esc(it.English), esc(it.Spanish), esc(it.English), esc(it.Spanish))
		}
		ew.printf("</ul>\n")
	}

	for _, tbl := range sec.Tables {
		ew.printf("<table>\n<tbody>\n")
		for _, row := range tbl.Rows {
			ew.printf("<tr><td>%s</td><td>", esc(row.Tense))
			for _, conj := range row.Conjugations {
				ew.printf("<span class=\"conjugation\">%s</span> ", esc(conj))
			}
			ew.printf("</td></tr>\n")
		}
		ew.printf("</tbody>\n</table>\n")
	}

	for _, sub := range sec.Subsections {
		writeSection(ew, sub)
	}

	ew.printf("</details>\n")
}

func esc(s string) string { return html.EscapeString(s) }

// errWriter latches the first write error so callers check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
