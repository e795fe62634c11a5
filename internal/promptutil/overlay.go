// Package promptutil holds the text helpers that sit around generated
// prompts: overlay captions, comma-separated prompt set algebra, parameter
// display and grammar-backed template filling.
package promptutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// "(word:1.2)" style attention weights
	attentionModifier = regexp.MustCompile(`:\s*[+-]?\d+(?:\.\d*)?\s*([\)\]])`)
	spaceRun          = regexp.MustCompile(`[ ]+`)
	bracketStripper   = strings.NewReplacer("[", "", "]", "", "(", "", ")", "")
)

// ToOverlay splits a prompt into a caption title and description. The
// text before the first comma becomes a title-cased title; the remaining
// comma phrases are trimmed, capitalized and rejoined with ", ".
// Attention weights and brackets are dropped from both.
func ToOverlay(prompt string) (title, desc string) {
	prompt = attentionModifier.ReplaceAllString(prompt, "$1")
	prompt = spaceRun.ReplaceAllString(prompt, " ")
	prompt = bracketStripper.Replace(prompt)

	head, rest, hasRest := strings.Cut(prompt, ",")

	title = cases.Title(language.Und).String(collapseWhitespace(head))

	if hasRest {
		phrases := strings.Split(collapseWhitespace(rest), ",")
		for i, phrase := range phrases {
			phrases[i] = Capitalize(strings.TrimSpace(phrase))
		}
		desc = strings.Join(phrases, ", ")
	}

	return title, desc
}

// Capitalize upper-cases the first rune of s and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	lower := cases.Lower(language.Und).String(s)
	r, size := utf8.DecodeRuneInString(lower)
	return string(unicode.ToUpper(r)) + lower[size:]
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
