// Package sanitize cleans text produced by PDF citation extraction and escapes
// it for Markdown output.
package sanitize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// extractionReplacer removes doubled backslashes and unescapes punctuation
// that extraction tools escape. `\\` is listed first so it wins at a shared
// position.
var extractionReplacer = strings.NewReplacer(
	`\\`, "",
	`\(`, "(",
	`\)`, ")",
	`\[`, "[",
	`\]`, "]",
	`\"`, `"`,
	`\'`, "'",
	`\{`, "{",
	`\}`, "}",
)

// entityReplacer decodes the common HTML entities in a single pass, so
// "&amp;lt;" becomes "&lt;" rather than "<".
var entityReplacer = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
	"&quot;", `"`,
)

// markdownReplacer escapes Markdown metacharacters and neutralizes tags.
var markdownReplacer = strings.NewReplacer(
	`\`, `\\`,
	"[", `\[`,
	"]", `\]`,
	"(", `\(`,
	")", `\)`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"#", `\#`,
	"<", "&lt;",
	">", "&gt;",
)

// Clean removes extraction artifacts: stray backslash escapes, HTML entities
// and irregular whitespace. The result is NFC-normalized and trimmed.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	s = extractionReplacer.Replace(s)
	s = entityReplacer.Replace(s)
	s = norm.NFC.String(s)
	return strings.Join(strings.Fields(s), " ")
}

// Escape makes s safe to embed in Markdown. Each call escapes its input
// exactly once.
func Escape(s string) string {
	return markdownReplacer.Replace(s)
}

// Text cleans s and escapes it for Markdown.
func Text(s string) string {
	return Escape(Clean(s))
}
