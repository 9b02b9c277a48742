package helptext_test

import (
	"strings"
	"testing"

	"github.com/aretw0/cmdform/pkg/helptext"
	"github.com/stretchr/testify/assert"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Empty", "", ""},
		{"Single line", "hello", "hello"},
		{"Escapes and joins", "a<b>\nc", "a&lt;b&gt;<br>\nc"},
		{"Ampersand and quotes", `x & "y" 'z'`, "x &amp; &#34;y&#34; &#39;z&#39;"},
		{"Trailing newline", "a\nb\n", "a<br>\nb"},
		{"Blank regular line kept", "a\n\nb", "a<br>\n<br>\nb"},
		{"CRLF", "a\r\nb", "a<br>\nb"},
		{"CR", "a\rb", "a<br>\nb"},
		{"Form feed", "x\f<b>", "x<br>\n&lt;b&gt;"},
		{"Vertical tab and separators", "a\vb\x1cc\x1dd\x1ee", "a<br>\nb<br>\nc<br>\nd<br>\ne"},
		{"Unicode line breaks", "a\u0085b\u2028c\u2029d", "a<br>\nb<br>\nc<br>\nd"},
		{"CR then LF is one break", "a\r\n\nb", "a<br>\n<br>\nb"},
		{
			"Preformatted block",
			"intro\n\b\ncode line\n\nmore text",
			"intro<pre>\ncode line</pre><br>\nmore text",
		},
		{
			"Preformatted lines are raw",
			"\b\n<b> & </b>\n\nafter",
			"<pre>\n<b> & </b></pre><br>\nafter",
		},
		{
			"Indented marker",
			"intro\n  \b  \n  two\n    spaces\n\nend",
			"intro<pre>\n  two\n    spaces</pre><br>\nend",
		},
		{
			"Marker inside block is content",
			"\b\none\n\b\ntwo\n\nend",
			"<pre>\none\n\b\ntwo</pre><br>\nend",
		},
		{
			"Closed block at end",
			"intro\n\b\ncode\n\n",
			"intro<pre>\ncode</pre>",
		},
		{
			"Two blocks",
			"a\n\b\nx\n\nb\n\b\ny\n\nc",
			"a<pre>\nx</pre><br>\nb<pre>\ny</pre><br>\nc",
		},
		{
			"Back to back blocks",
			"\b\nx\n\n\b\ny\n\nc",
			"<pre>\nx</pre><pre>\ny</pre><br>\nc",
		},
		{
			"Empty block",
			"a\n\b\n\nb",
			"a<pre></pre><br>\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, helptext.ToHTML(tt.in))
		})
	}
}

// A block still open at the end of the text is emitted without </pre>.
func TestToHTML_UnclosedBlock(t *testing.T) {
	got := helptext.ToHTML("intro\n\b\ncode line\nsecond")
	assert.Equal(t, "intro<pre>\ncode line\nsecond", got)
	assert.NotContains(t, got, "</pre>")
}

func TestParse(t *testing.T) {
	blocks := helptext.Parse("intro\n\b\ncode\n\nmore\n\b\nopen")

	assert.Equal(t, []helptext.Block{
		{Lines: []string{"intro"}, Closed: true},
		{Preformatted: true, Lines: []string{"code"}, Closed: true},
		{Lines: []string{"more"}, Closed: true},
		{Preformatted: true, Lines: []string{"open"}},
	}, blocks)

	assert.Nil(t, helptext.Parse(""))
}

// Outside preformatted blocks the output carries no markup but line breaks
// and no bare ampersands.
func FuzzToHTML(f *testing.F) {
	for _, seed := range []string{
		"", "a<b>\nc", "x & y", "<script>alert(1)</script>", "a\r\nb\rc",
		"\b\ncode\n\n<script>&", "<i>\n\b\n</pre>\n\n&amp", "\b\n<open>", "\b\nx\n\n\b\ny\n\n<z>",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		got := helptext.ToHTML(s)

		// cut the preformatted spans, which are emitted raw
		var regular strings.Builder
		rest := got
		for _, block := range helptext.Parse(s) {
			if !block.Preformatted {
				end := strings.Index(rest, "<pre>")
				if end < 0 {
					end = len(rest)
				}
				regular.WriteString(rest[:end])
				rest = rest[end:]
				continue
			}
			span := "<pre>"
			for _, line := range block.Lines {
				span += "\n" + line
			}
			if block.Closed {
				span += "</pre>"
			}
			if !assert.True(t, strings.HasPrefix(rest, span), "missing block %q in %q", span, got) {
				return
			}
			rest = rest[len(span):]
		}
		assert.Empty(t, rest, "unexpected trailing output in %q", got)

		rest = strings.ReplaceAll(regular.String(), "<br>\n", "")
		assert.NotContains(t, rest, "<")
		assert.NotContains(t, rest, ">")

		// every ampersand starts an entity
		for i := strings.IndexByte(rest, '&'); i >= 0; i = strings.IndexByte(rest, '&') {
			end := strings.IndexByte(rest[i:], ';')
			if !assert.Positive(t, end, "bare ampersand in %q", got) {
				return
			}
			rest = rest[i+end+1:]
		}
	})
}
