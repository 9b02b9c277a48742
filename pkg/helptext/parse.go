package helptext

import (
	"strings"
	"unicode/utf8"

	"github.com/aretw0/cmdform/pkg/domain"
)

// Block is a run of help lines that share one rendering mode.
type Block struct {
	Preformatted bool
	Lines        []string
	// Closed is false only for a preformatted block still open at the end
	// of the text.
	Closed bool
}

type state int

const (
	stateRegular state = iota
	statePreformatted
)

// Parse splits text into alternating regular and preformatted blocks.
// Marker lines and the blank lines that end preformatted blocks are consumed.
// The first block is always regular, possibly empty.
func Parse(text string) []Block {
	if text == "" {
		return nil
	}

	var (
		blocks  []Block
		regular []string
		raw     []string
		st      = stateRegular
	)

	for _, line := range splitLines(text) {
		switch st {
		case stateRegular:
			if isMarker(line) {
				blocks = append(blocks, Block{Lines: regular, Closed: true})
				regular = nil
				st = statePreformatted
				continue
			}
			regular = append(regular, line)
		case statePreformatted:
			if strings.TrimSpace(line) == "" {
				blocks = append(blocks, Block{Preformatted: true, Lines: raw, Closed: true})
				raw = nil
				st = stateRegular
				continue
			}
			raw = append(raw, line)
		}
	}

	if st == statePreformatted {
		return append(blocks, Block{Preformatted: true, Lines: raw})
	}
	return append(blocks, Block{Lines: regular, Closed: true})
}

func isMarker(line string) bool {
	return strings.TrimSpace(line) == domain.PreformattedMarker
}

// splitLines splits on every line boundary: "\n", "\r\n", "\r", "\v", "\f",
// the file/group/record separators, NEL and the Unicode line and paragraph
// separators. A trailing line break does not yield an extra empty line.
func splitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}
		lines = append(lines, text[start:i])
		i += size
		if r == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
