package helptext

import (
	"html"
	"strings"
)

const (
	lineBreak = "<br>\n"
	preOpen   = "<pre>"
	preClose  = "</pre>"
)

// ToHTML renders help text as an HTML fragment.
//
// Regular lines are escaped and joined with "<br>\n". A closed preformatted
// block is followed by "<br>\n" when more regular text comes after it. A
// preformatted block still open at the end of the text is left without
// "</pre>".
func ToHTML(text string) string {
	var b strings.Builder
	afterPre := false

	for _, block := range Parse(text) {
		if block.Preformatted {
			b.WriteString(preOpen)
			for _, line := range block.Lines {
				b.WriteString("\n")
				b.WriteString(line)
			}
			if block.Closed {
				b.WriteString(preClose)
				afterPre = true
			}
			continue
		}

		if len(block.Lines) == 0 {
			continue
		}
		if afterPre {
			b.WriteString(lineBreak)
		}
		for i, line := range block.Lines {
			if i > 0 {
				b.WriteString(lineBreak)
			}
			b.WriteString(html.EscapeString(line))
		}
	}

	return b.String()
}
