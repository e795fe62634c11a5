// Package grammar implements a weighted probabilistic context-free grammar
// used to synthesize prompt and filler text.
//
// A Grammar is parsed once from a rule file and is read-only afterwards, so
// a single value can serve any number of goroutines. Randomness is always
// supplied by the caller through a Source.
package grammar

import "io"

// DefaultStart is the start symbol used by Generate.
const DefaultStart = "ROOT"

// Grammar is an immutable, parsed rule set.
type Grammar struct {
	table *Table
}

// New parses a grammar from r.
func New(r io.Reader) (*Grammar, error) {
	t, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return &Grammar{table: t}, nil
}

// Load parses the grammar file at path.
func Load(path string) (*Grammar, error) {
	t, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return &Grammar{table: t}, nil
}

// Generate expands DefaultStart and normalizes the result.
func (g *Grammar) Generate(rng Source) string {
	return g.GenerateFrom(rng, DefaultStart)
}

// GenerateFrom expands start and normalizes the result. A start symbol that
// heads no rule is a terminal and comes back unchanged.
func (g *Grammar) GenerateFrom(rng Source, start string) string {
	return Normalize(g.table.Expand(start, rng))
}

// Tokens returns the raw terminal expansion of start without normalizing.
func (g *Grammar) Tokens(rng Source, start string) []string {
	return g.table.Expand(start, rng)
}

// Rules returns a copy of head's rules in file order.
func (g *Grammar) Rules(head string) []Rule {
	return g.table.Rules(head)
}

// TotalWeight returns the summed weight of head's rules.
func (g *Grammar) TotalWeight(head string) float64 {
	return g.table.TotalWeight(head)
}

// IsNonTerminal reports whether symbol heads any rule.
func (g *Grammar) IsNonTerminal(symbol string) bool {
	return g.table.IsNonTerminal(symbol)
}

// Heads lists the grammar's non-terminals in sorted order.
func (g *Grammar) Heads() []string {
	return g.table.Heads()
}

// RuleCount returns the total number of rules.
func (g *Grammar) RuleCount() int {
	return g.table.RuleCount()
}
