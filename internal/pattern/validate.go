package pattern

// Validate checks the positive form of p against rules, returning one
// violation per failing rule. Negation never affects validity.
func Validate(p string, rules RuleSet) []Violation {
	if rules == nil {
		rules = DefaultRules()
	}
	positive := PositivePattern(p)
	var out []Violation
	for _, r := range rules {
		if r.Test == nil || !r.Test(positive) {
			continue
		}
		out = append(out, Violation{Pattern: p, Rule: r.Name, Message: r.Message})
	}
	return out
}

// ValidateAll concatenates the violations of every pattern in order.
func ValidateAll(patterns []string, rules RuleSet) []Violation {
	if rules == nil {
		rules = DefaultRules()
	}
	var out []Violation
	for _, p := range patterns {
		out = append(out, Validate(p, rules)...)
	}
	return out
}
