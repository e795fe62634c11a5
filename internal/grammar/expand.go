package grammar

// Expand rewrites symbol into terminal tokens, depth-first and left to
// right. Terminals expand to themselves. There is no cycle or depth guard:
// a grammar whose rules can recurse forever will exhaust the stack, and
// keeping grammars well-founded is the author's job.
func (t *Table) Expand(symbol string, rng Source) []string {
	var out []string
	t.expand(symbol, rng, &out)
	return out
}

func (t *Table) expand(symbol string, rng Source, out *[]string) {
	rules, ok := t.rules[symbol]
	if !ok {
		*out = append(*out, symbol)
		return
	}

	rule := choose(rules, t.totals[symbol], rng)
	for _, s := range rule.Body {
		t.expand(s, rng, out)
	}
}
