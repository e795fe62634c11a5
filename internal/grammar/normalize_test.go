package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{"empty", nil, ""},
		{"single", []string{"word"}, "word"},
		{"space before comma", []string{"hello", ",", "world"}, "hello, world"},
		{"duplicate commas", []string{"a", ",", ",", ",", "b"}, "a, b"},
		{"glued commas", []string{"a", ",,,", "b"}, "a, b"},
		{"brackets tighten", []string{"[", "a", "]", ",", "b"}, "[a], b"},
		{"parens tighten", []string{"(", "red", "car", ")"}, "(red car)"},
		{"braces tighten", []string{"{", "x", "}"}, "{x}"},
		{"trailing period", []string{"word", "."}, "word."},
		{"word before bracket", []string{"a", "(", "b", ")"}, "a(b)"},
		{"empty tokens", []string{"a", "", "", "b"}, "a b"},
		{"digits", []string{"4", "k", ",", "8", "!"}, "4 k, 8!"},
		{"unicode word", []string{"café", "!"}, "café!"},
		{"punctuation run", []string{"wait", ".", "."}, "wait. ."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.tokens))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	alphabet := []string{
		"a", "word", "42", "café", ",", ",,", ".", "!", "-",
		"[", "]", "(", ")", "{", "}", ":1.2", "x,", ",y", "",
	}
	rng := NewSource(2024)

	for i := 0; i < 2000; i++ {
		n := int(rng.Float64() * 12)
		tokens := make([]string, n)
		for j := range tokens {
			tokens[j] = alphabet[int(rng.Float64()*float64(len(alphabet)))]
		}

		once := Normalize(tokens)
		twice := Normalize([]string{once})
		assert.Equal(t, once, twice, "tokens %q", tokens)
	}
}
