package grammar

import "sort"

// Rule is one weighted production: Head -> Body.
type Rule struct {
	Weight float64
	Head   string
	Body   []string
}

// Table is the parsed rule set. It is never mutated once Parse returns.
type Table struct {
	rules  map[string][]Rule
	totals map[string]float64
}

func newTable() *Table {
	return &Table{
		rules:  make(map[string][]Rule),
		totals: make(map[string]float64),
	}
}

// add appends a rule and keeps the per-head weight total in step.
func (t *Table) add(r Rule) {
	t.rules[r.Head] = append(t.rules[r.Head], r)
	t.totals[r.Head] += r.Weight
}

// IsNonTerminal reports whether symbol is the head of at least one rule.
func (t *Table) IsNonTerminal(symbol string) bool {
	_, ok := t.rules[symbol]
	return ok
}

// Rules returns a copy of the rules for head in file order.
func (t *Table) Rules(head string) []Rule {
	src := t.rules[head]
	if len(src) == 0 {
		return nil
	}
	out := make([]Rule, len(src))
	for i, r := range src {
		out[i] = Rule{Weight: r.Weight, Head: r.Head, Body: append([]string(nil), r.Body...)}
	}
	return out
}

// TotalWeight returns the sum of the weights of head's rules (0 for terminals).
func (t *Table) TotalWeight(head string) float64 {
	return t.totals[head]
}

// Heads returns every non-terminal, sorted.
func (t *Table) Heads() []string {
	heads := make([]string, 0, len(t.rules))
	for h := range t.rules {
		heads = append(heads, h)
	}
	sort.Strings(heads)
	return heads
}

// RuleCount returns the number of rules across all heads.
func (t *Table) RuleCount() int {
	n := 0
	for _, rs := range t.rules {
		n += len(rs)
	}
	return n
}
