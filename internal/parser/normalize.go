package parser

import (
	"regexp"
	"strings"
)

var (
	reCR       = regexp.MustCompile(`\r`)
	reSpaceRun = regexp.MustCompile(`[^\S\n]+`) // whitespace runs, newlines excluded
)

// Normalize canonicalizes an OCR transcript: carriage returns removed, runs
// of non-newline whitespace collapsed to a single space, the whole string
// trimmed. Total and idempotent; line breaks are preserved because every
// downstream heuristic reasons per line.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = reCR.ReplaceAllString(s, "")
	s = reSpaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// splitLines returns the trimmed, non-empty lines of normalized text.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
