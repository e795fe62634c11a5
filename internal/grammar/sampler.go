package grammar

// choose picks one of rules by inverse-CDF sampling over their weights.
//
// The cumulative distribution is built by adding each rule's independently
// normalized share (weight/total) in file order, and the first rule whose
// cumulative value is >= the draw wins. Rounding can leave the final
// cumulative value just under 1.0; a draw landing in that gap, or any draw
// when total is 0, selects the last rule.
func choose(rules []Rule, total float64, rng Source) Rule {
	r := rng.Float64()

	cumulative := 0.0
	for _, rule := range rules {
		cumulative += rule.Weight / total
		if cumulative >= r {
			return rule
		}
	}

	return rules[len(rules)-1]
}
