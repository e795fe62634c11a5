package grammar

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccumulatesTotalWeight(t *testing.T) {
	table, err := Parse(strings.NewReader("2 Adj quick\n6 Adj slow\n"))
	require.NoError(t, err)

	assert.Equal(t, 8.0, table.TotalWeight("Adj"))
	assert.Equal(t, 0.0, table.TotalWeight("quick"))
}

func TestParseTotalsMatchRuleWeights(t *testing.T) {
	table, err := ParseFile(filepath.Join("testdata", "prompt.grammar"))
	require.NoError(t, err)

	for _, head := range table.Heads() {
		sum := 0.0
		for _, r := range table.Rules(head) {
			sum += r.Weight
		}
		assert.Equal(t, sum, table.TotalWeight(head), "head %s", head)
	}
}

func TestParseCommentTruncation(t *testing.T) {
	tests := []struct {
		name string
		line string
		body []string
	}{
		{"separate hash token", "1 ROOT cat # a comment dog", []string{"cat"}},
		{"hash glued to word", "1 ROOT cat dog#comment bird", []string{"cat"}},
		{"hash starts token", "1 ROOT cat #dog", []string{"cat"}},
		{"comment right after head", "1 ROOT # nothing", []string{}},
		{"no comment", "1 ROOT cat dog", []string{"cat", "dog"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Parse(strings.NewReader(tt.line))
			require.NoError(t, err)

			rules := table.Rules("ROOT")
			require.Len(t, rules, 1)
			assert.Equal(t, 1.0, rules[0].Weight)
			assert.Equal(t, "ROOT", rules[0].Head)
			assert.Equal(t, tt.body, rules[0].Body)
		})
	}
}

func TestParseSkipsBlankAndCommentLines(t *testing.T) {
	src := "# header\n\n   \n\t\n1 ROOT a\n#1 ROOT b\n"
	table, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 1, table.RuleCount())
	assert.Equal(t, []string{"ROOT"}, table.Heads())
}

func TestParseRejectsIndentedComment(t *testing.T) {
	src := "# header\n\n   \n\t\n1 ROOT a\n    # indented comment\n"
	_, err := Parse(strings.NewReader(src))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 6, parseErr.Line)
	assert.Equal(t, "    # indented comment", parseErr.Text)
}

func TestParsePreservesFileOrder(t *testing.T) {
	table, err := Parse(strings.NewReader("1 X first\n1 Y other\n1 X second\n1 X third\n"))
	require.NoError(t, err)

	var bodies []string
	for _, r := range table.Rules("X") {
		bodies = append(bodies, r.Body[0])
	}
	assert.Equal(t, []string{"first", "second", "third"}, bodies)
}

func TestParseEmptyBodyAndDecimalWeight(t *testing.T) {
	table, err := Parse(strings.NewReader("0.25 Opt\n0.75 Opt word\n"))
	require.NoError(t, err)

	rules := table.Rules("Opt")
	require.Len(t, rules, 2)
	assert.Empty(t, rules[0].Body)
	assert.Equal(t, 1.0, table.TotalWeight("Opt"))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"weight only", "1 ROOT a\n5\n", 2},
		{"non numeric weight", "ROOT a b\n", 1},
		{"negative weight", "1 ROOT a\n\n-1 ROOT b\n", 3},
		{"infinite weight", "Inf ROOT a\n", 1},
		{"comment leaves one token", "1 #ROOT a\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Parse(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Nil(t, table)
			assert.True(t, errors.Is(err, ErrParse))

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.line, perr.Line)
			assert.NotEmpty(t, perr.Reason)
		})
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.grammar"))
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrIO))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Contains(t, ioErr.Path, "missing.grammar")
}

func TestParseReadFailure(t *testing.T) {
	_, err := Parse(iotest.ErrReader(errors.New("disk on fire")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIO))
	assert.False(t, errors.Is(err, ErrParse))
}

func TestRulesReturnsCopy(t *testing.T) {
	table, err := Parse(strings.NewReader("1 ROOT a b\n"))
	require.NoError(t, err)

	rules := table.Rules("ROOT")
	rules[0].Body[0] = "mutated"
	rules[0].Weight = 99

	again := table.Rules("ROOT")
	assert.Equal(t, "a", again[0].Body[0])
	assert.Equal(t, 1.0, again[0].Weight)
	assert.Nil(t, table.Rules("a"))
}
