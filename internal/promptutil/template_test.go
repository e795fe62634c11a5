package promptutil

import (
	"strings"
	"testing"

	"github.com/Conceptual-Machines/promptgram/internal/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const templateGrammar = `
1 Style watercolor
1 Subject a fox
1 Subject an owl
`

func TestTemplateFill(t *testing.T) {
	g, err := grammar.New(strings.NewReader(templateGrammar))
	require.NoError(t, err)

	given := "forest at night"
	fields := map[string]*string{
		"scene":   &given,
		"style":   nil,
		"subject": nil,
	}

	got := TemplateFill(fields, g, grammar.NewSource(1), true)

	assert.Equal(t, "forest at night", got["scene"])
	assert.Equal(t, "watercolor", got["style"])
	assert.Contains(t, []string{"a fox", "an owl"}, got["subject"])
}

func TestTemplateFillWithoutFill(t *testing.T) {
	g, err := grammar.New(strings.NewReader(templateGrammar))
	require.NoError(t, err)

	given := "pencil"
	got := TemplateFill(map[string]*string{"style": &given, "subject": nil}, g, grammar.NewSource(1), false)

	assert.Equal(t, map[string]string{"style": "pencil"}, got)
}

func TestTemplateFillUnknownFieldEchoesSymbol(t *testing.T) {
	g, err := grammar.New(strings.NewReader(templateGrammar))
	require.NoError(t, err)

	got := TemplateFill(map[string]*string{"mood": nil}, g, grammar.NewSource(1), true)
	assert.Equal(t, "Mood", got["mood"])
}
