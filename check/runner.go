package check

import (
	"errors"
	"fmt"
)

// ErrNoRules is returned by a runner without any rules.
var ErrNoRules = errors.New("no check rules to run")

// Runner runs an ordered list of check rules against fonts.
// A Runner does not change after construction and may be shared between goroutines.
type Runner struct {
	rules []Rule
}

// NewRunner creates a runner for the given rules, which will run in the order given.
func NewRunner(rules ...Rule) *Runner {
	r := &Runner{rules: make([]Rule, len(rules))}
	copy(r.rules, rules)
	return r
}

// DefaultRunner creates a runner for all registered rules.
func DefaultRunner() *Runner {
	rules, _ := Rules()
	return NewRunner(rules...)
}

// Rules returns the names of the runner's rules, in order.
func (r *Runner) Rules() []string {
	names := make([]string, len(r.rules))
	for i, rule := range r.rules {
		names[i] = rule.Name
	}
	return names
}

// Run invokes every rule against font and returns the concatenation of their
// diagnostics, in rule order. Diagnostics are neither filtered nor deduplicated.
//
// If a rule hits an arithmetic overflow, checking the font is aborted and an
// error wrapping the *OverflowError is returned, without any diagnostics.
func (r *Runner) Run(font Font) ([]Diagnostic, error) {
	if len(r.rules) == 0 {
		return nil, ErrNoRules
	}
	var diagnostics []Diagnostic
	for _, rule := range r.rules {
		d, err := runRule(rule, font)
		if err != nil {
			return nil, err
		}
		tracer().Debugf("rule %s: %d diagnostic(s)", rule.Name, len(d))
		diagnostics = append(diagnostics, d...)
	}
	return diagnostics, nil
}

func runRule(rule Rule, font Font) (d []Diagnostic, err error) {
	defer func() {
		if r := recover(); r != nil {
			overflow, ok := r.(*OverflowError)
			if !ok {
				panic(r)
			}
			tracer().Errorf("rule %s aborted: %v", rule.Name, overflow)
			d, err = nil, fmt.Errorf("check rule %s: %w", rule.Name, overflow)
		}
	}()
	return rule.Check(font), nil
}
