package helptext

import "strings"

// ToMarkdown renders help text as Markdown for terminal renderers.
// Regular lines become paragraphs with hard line breaks and preformatted
// blocks become fenced code blocks. Open blocks are closed at the end.
func ToMarkdown(text string) string {
	var parts []string

	for _, block := range Parse(text) {
		if block.Preformatted {
			fence := codeFence(block.Lines)
			parts = append(parts, fence+"\n"+strings.Join(block.Lines, "\n")+"\n"+fence)
			continue
		}
		if len(block.Lines) == 0 {
			continue
		}
		parts = append(parts, strings.Join(block.Lines, "  \n"))
	}

	return strings.Join(parts, "\n\n")
}

// codeFence returns a backtick fence longer than any backtick run in lines.
func codeFence(lines []string) string {
	longest := 0
	for _, line := range lines {
		run := 0
		for _, c := range line {
			if c != '`' {
				run = 0
				continue
			}
			run++
			longest = max(longest, run)
		}
	}
	return strings.Repeat("`", max(3, longest+1))
}
