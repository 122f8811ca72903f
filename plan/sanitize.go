package plan

import (
	"regexp"
	"strings"
)

// filler substitutes each character that is illegal in filesystem names.
const filler = "_"

// placeholderStem names segments whose title sanitizes to nothing.
const placeholderStem = "untitled"

// illegalChars matches characters rejected by at least one common
// filesystem, plus ASCII control characters.
var illegalChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f\x7f]`)

// whitespaceRuns matches consecutive whitespace for collapsing.
var whitespaceRuns = regexp.MustCompile(`\s+`)

// SanitizeTitle normalizes an arbitrary chapter or video title into a safe
// filename stem. Each illegal character becomes a single filler character,
// whitespace runs collapse to one space, and leading/trailing spaces and
// periods are trimmed. An empty result yields a fixed placeholder.
// The function is idempotent.
func SanitizeTitle(title string) string {
	s := illegalChars.ReplaceAllString(title, filler)
	s = whitespaceRuns.ReplaceAllString(s, " ")
	s = strings.Trim(s, " .")
	if s == "" {
		return placeholderStem
	}
	return s
}
