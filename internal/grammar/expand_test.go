package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTerminal(t *testing.T) {
	g := mustNew(t, "1 ROOT a\n")
	assert.Equal(t, []string{"plain"}, g.Tokens(NewSource(1), "plain"))
}

func TestExpandDoesNotDeduplicate(t *testing.T) {
	g := mustNew(t, "1 ROOT a a\n")
	for seed := uint64(0); seed < 20; seed++ {
		assert.Equal(t, "a a", g.Generate(NewSource(seed)))
	}
}

func TestExpandDepthFirstOrder(t *testing.T) {
	g := mustNew(t, `
1 ROOT A mid B
1 A a1 C a2
1 B b1
1 C c1 c2
`)
	got := g.Tokens(NewSource(3), DefaultStart)
	assert.Equal(t, []string{"a1", "c1", "c2", "a2", "mid", "b1"}, got)
}

func TestExpandUsesOneDrawPerNonTerminal(t *testing.T) {
	g := mustNew(t, `
1 ROOT Pick Pick
1 Pick left
1 Pick right
`)
	// ROOT has a single rule but still consumes a draw.
	rng := &scriptedSource{draws: []float64{0.9, 0.1, 0.9}}
	assert.Equal(t, []string{"left", "right"}, g.Tokens(rng, DefaultStart))
	assert.Equal(t, 3, rng.next)
}

func TestExpandHeadNameIsAlwaysNonTerminal(t *testing.T) {
	g := mustNew(t, `
1 ROOT the Adj word
1 Adj bright
`)
	require.True(t, g.IsNonTerminal("Adj"))
	assert.Equal(t, "the bright word", g.Generate(NewSource(9)))
}

func TestExpandEmptyBody(t *testing.T) {
	g := mustNew(t, "1 ROOT start Opt end\n1 Opt\n")
	assert.Equal(t, []string{"start", "end"}, g.Tokens(NewSource(0), DefaultStart))
}
