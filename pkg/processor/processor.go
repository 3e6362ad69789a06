// Package processor normalizes text scraped from dictionary markup.
package processor

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var allTags = regexp.MustCompile(`<[^>]+>`)

// StripTags removes anything between angle brackets. It does not understand
// nested or malformed tags.
func StripTags(text string) string {
	return allTags.ReplaceAllString(text, "")
}

// CollapseSpace replaces every whitespace run with a single space and trims
// the result.
func CollapseSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func Clean(text string) string {
	return CollapseSpace(StripTags(text))
}

// Length counts characters, not bytes.
func Length(text string) int {
	return utf8.RuneCountInString(text)
}

// Within reports whether lo < Length(text) < hi.
func Within(text string, lo, hi int) bool {
	n := Length(text)
	return n > lo && n < hi
}

// Segments splits text on sep and trims every segment. Empty segments are kept
// so callers can tell the leading segment apart from the rest.
func Segments(text, sep string) []string {
	parts := strings.Split(text, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
