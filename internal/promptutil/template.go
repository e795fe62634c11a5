package promptutil

import (
	"sort"

	"github.com/Conceptual-Machines/promptgram/internal/grammar"
)

// Generator produces text from a start symbol.
type Generator interface {
	GenerateFrom(rng grammar.Source, start string) string
}

// TemplateFill resolves template fields. Fields with a value are copied
// through; unset fields are generated from the grammar symbol named after
// the capitalized field ("style" -> "Style") when fill is true, and left
// out otherwise. Fields are visited in name order so a seeded source gives
// repeatable results.
func TemplateFill(fields map[string]*string, g Generator, rng grammar.Source, fill bool) map[string]string {
	names := make([]string, 0, len(fields))
	for field := range fields {
		names = append(names, field)
	}
	sort.Strings(names)

	out := make(map[string]string, len(fields))
	for _, field := range names {
		switch value := fields[field]; {
		case value != nil:
			out[field] = *value
		case fill:
			out[field] = g.GenerateFrom(rng, Capitalize(field))
		}
	}
	return out
}
