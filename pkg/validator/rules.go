package validator

import "github.com/dmitrymomot/safeinput"

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error safeinput.ValidationError
}

// Apply evaluates rules in order and returns the first failure.
// Inputs are rejected as a whole, so there is nothing to gain from collecting every failure.
func Apply(rules ...Rule) error {
	for _, rule := range rules {
		if !rule.Check() {
			return rule.Error
		}
	}
	return nil
}
