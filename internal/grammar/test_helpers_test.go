package grammar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedSource replays a fixed list of draws, cycling when exhausted.
type scriptedSource struct {
	draws []float64
	next  int
}

func (s *scriptedSource) Float64() float64 {
	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v
}

func mustNew(t *testing.T, src string) *Grammar {
	t.Helper()
	g, err := New(strings.NewReader(src))
	require.NoError(t, err)
	return g
}
