package promptutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	assert.Nil(t, Tokenize(""))
	assert.Equal(t, []string{"a", "b c", "d"}, Tokenize(" a,b c ,, d ,"))
}

func TestRejoin(t *testing.T) {
	got, ok := Rejoin(nil)
	assert.False(t, ok)
	assert.Equal(t, "", got)

	got, ok = Rejoin([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a, b", got)
}

func TestUnion(t *testing.T) {
	tests := []struct {
		name          string
		first, second string
		want          string
		ok            bool
	}{
		{"both empty", "", "", "", false},
		{"first only", "a, b", "", "a, b", true},
		{"second only", "", "c", "c", true},
		{"overlap keeps first order", "a, b", "b, c, a", "a, b, c", true},
		{"duplicates inside first", "a, a, b", "", "a, b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Union(tt.first, tt.second)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		name          string
		first, second string
		want          string
		ok            bool
	}{
		{"nothing to remove", "a, b", "", "a, b", true},
		{"removes matches", "a, b, c", "b", "a, c", true},
		{"removes everything", "a, b", "b,a", "", false},
		{"unknown phrases ignored", "a", "z", "a", true},
		{"empty base", "", "a", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Subtract(tt.first, tt.second)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
