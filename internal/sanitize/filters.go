// Package sanitize cleans user-supplied filter text before it reaches the
// prompt builder. Free-text preferences are embedded verbatim in the model
// instruction, so they are normalized and stripped of control characters
// first.
// Reference: OWASP LLM Prompt Injection Prevention Cheat Sheet.
package sanitize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// maxEntryLength caps a single filter entry. Anything longer is noise or
// an attempt to smuggle instructions into the prompt.
const maxEntryLength = 200

// Text normalizes one user-supplied entry: Unicode NFC (so lookalike
// sequences compare predictably), control characters and newlines removed,
// runs of whitespace collapsed, length capped.
func Text(s string) string {
	s = norm.NFC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsControl(r) {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}

	cleaned := strings.Join(strings.Fields(b.String()), " ")
	runes := []rune(cleaned)
	if len(runes) > maxEntryLength {
		cleaned = string(runes[:maxEntryLength])
	}
	return cleaned
}

// List applies Text to every entry, dropping ones that end up empty.
func List(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if t := Text(v); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	return cleaned
}
