package render

import (
	"strings"
	"unicode"
)

// sheetNameLimit is the hard cap Excel places on worksheet names.
const sheetNameLimit = 31

// sanitizeLatin1 drops runes the PDF's core fonts cannot represent
// (codepoints beyond Latin-1). Whitespace outside that range becomes a
// plain space instead of disappearing.
func sanitizeLatin1(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r < 256:
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// sanitizeSheetName strips the characters Excel forbids in worksheet names
// and truncates to the 31-rune limit.
func sanitizeSheetName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ':', '*', '?', '/', '\\', '[', ']':
			return -1
		}
		return r
	}, sanitizeLatin1(name))

	runes := []rune(cleaned)
	if len(runes) > sheetNameLimit {
		runes = runes[:sheetNameLimit]
	}
	out := strings.TrimSpace(string(runes))
	if out == "" {
		return "Report"
	}
	return out
}
