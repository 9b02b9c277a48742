/*
Package helptext converts command help text into HTML and Markdown.

Help text written for terminals marks preformatted blocks with a line that
holds only a backspace character ("\b"). The block runs until the next blank
line:

	Usage examples follow.
	\b
	  mytool build --out dist
	  mytool clean

	Regular text again.

Lines outside preformatted blocks are HTML-escaped and joined with "<br>\n".
Lines inside a block are passed through unchanged inside <pre>.
*/
package helptext
