package grammar

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

const maxLineBytes = 1 << 20

// Parse reads rule lines of the form
//
//	<weight> <head> [<body-symbol> ...] [# comment]
//
// into a Table in a single pass. Whitespace-only lines and lines starting
// with '#' are skipped. Within a rule, the first token containing '#' and
// everything after it is discarded, so "1 ROOT cat #note dog" yields
// ROOT -> cat.
func Parse(r io.Reader) (*Table, error) {
	t := newTable()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rule, err := parseRule(stripComment(strings.Fields(line)))
		if err != nil {
			err.Line = lineNo
			err.Text = line
			return nil, err
		}
		t.add(rule)
	}

	if err := scanner.Err(); err != nil {
		return nil, &IOError{Err: err}
	}

	return t, nil
}

// ParseFile opens path and parses it.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	t, err := Parse(f)
	if ioErr, ok := err.(*IOError); ok {
		ioErr.Path = path
	}
	return t, err
}

func stripComment(tokens []string) []string {
	for i, tok := range tokens {
		if strings.Contains(tok, "#") {
			return tokens[:i]
		}
	}
	return tokens
}

func parseRule(tokens []string) (Rule, *ParseError) {
	if len(tokens) < 2 {
		return Rule{}, &ParseError{Reason: "rule needs a weight and a head"}
	}

	weight, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil {
		return Rule{}, &ParseError{Reason: "weight is not a number"}
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return Rule{}, &ParseError{Reason: "weight must be a finite non-negative number"}
	}

	body := make([]string, len(tokens)-2)
	copy(body, tokens[2:])

	return Rule{Weight: weight, Head: tokens[1], Body: body}, nil
}
