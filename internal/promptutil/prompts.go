package promptutil

import "strings"

// Tokenize splits a comma-separated prompt into trimmed phrases. Empty
// phrases are dropped.
func Tokenize(prompt string) []string {
	var tokens []string
	for _, part := range strings.Split(prompt, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

// Rejoin joins phrases with ", ". ok is false when there is nothing to join.
func Rejoin(tokens []string) (prompt string, ok bool) {
	if len(tokens) == 0 {
		return "", false
	}
	return strings.Join(tokens, ", "), true
}

// Union returns the phrases of first followed by the phrases of second that
// were not already present, in first-seen order.
func Union(first, second string) (string, bool) {
	return Rejoin(dedupe(append(Tokenize(first), Tokenize(second)...)))
}

// Subtract returns the distinct phrases of first that do not appear in
// second.
func Subtract(first, second string) (string, bool) {
	remove := make(map[string]struct{})
	for _, tok := range Tokenize(second) {
		remove[tok] = struct{}{}
	}

	var kept []string
	for _, tok := range dedupe(Tokenize(first)) {
		if _, drop := remove[tok]; !drop {
			kept = append(kept, tok)
		}
	}
	return Rejoin(kept)
}

func dedupe(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}
