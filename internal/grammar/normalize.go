package grammar

import (
	"regexp"
	"strings"
)

// Word runes follow Unicode: letters, digits and underscore.
const wordClass = `\p{L}\p{N}_`

var normalizeSteps = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`[ ]+`), " "},
	{regexp.MustCompile(`,([ ]*,)+`), ","},
	{regexp.MustCompile(`,+`), ","},
	{regexp.MustCompile(`([\[({])\s+`), "$1"},
	{regexp.MustCompile(`\s+([\])},])`), "$1"},
	{regexp.MustCompile(`([` + wordClass + `])\s+([^` + wordClass + `])`), "$1$2"},
}

// Normalize joins tokens with single spaces and tidies the result:
// collapses repeated spaces and commas, pulls brackets tight around their
// contents, removes space before commas and closing brackets, and attaches
// punctuation to the preceding word ("word ." becomes "word.").
//
// Normalize is idempotent for tokens that contain no whitespace, which
// covers everything Parse can produce.
func Normalize(tokens []string) string {
	text := strings.Join(tokens, " ")
	for _, step := range normalizeSteps {
		text = step.re.ReplaceAllString(text, step.repl)
	}
	return text
}
