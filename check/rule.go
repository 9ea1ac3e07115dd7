package check

import (
	"errors"
	"fmt"
	"sync"

	"github.com/npillmayer/otcheck/ot"
)

// Font is the view of a font a check rule gets to see.
// *ot.Font implements it. Errors should match ot.ErrTableNotFound or
// ot.ErrTableUnreadable.
type Font interface {
	Head() (*ot.HeadTable, error)
	OS2() (*ot.OS2Table, error)
}

var _ Font = (*ot.Font)(nil)

// CheckFunc is the functional interface of all check rules. It must not
// modify the font and must not keep a reference to it.
type CheckFunc func(Font) []Diagnostic

// Rule is a named check function.
type Rule struct {
	Name  string
	Check CheckFunc
}

// --- Registry --------------------------------------------------------------

var registry = struct {
	sync.RWMutex
	order []string
	rules map[string]Rule
}{rules: make(map[string]Rule)}

// ErrUnknownRule is returned for rule names which have not been registered.
var ErrUnknownRule = errors.New("unknown check rule")

// Register adds a rule to the set of known rules. Rules keep the order in which
// they have been registered. Registering a name twice is an error.
func Register(rule Rule) error {
	if rule.Name == "" || rule.Check == nil {
		return errors.New("check rule needs a name and a check function")
	}
	registry.Lock()
	defer registry.Unlock()
	if _, ok := registry.rules[rule.Name]; ok {
		return fmt.Errorf("check rule %q already registered", rule.Name)
	}
	registry.rules[rule.Name] = rule
	registry.order = append(registry.order, rule.Name)
	tracer().Debugf("registered check rule %s", rule.Name)
	return nil
}

// Lookup returns the registered rule for a name.
func Lookup(name string) (Rule, bool) {
	registry.RLock()
	defer registry.RUnlock()
	r, ok := registry.rules[name]
	return r, ok
}

// Rules returns the registered rules with the given names, in the order of the
// names. Without names, all registered rules are returned in registration order.
func Rules(names ...string) ([]Rule, error) {
	registry.RLock()
	defer registry.RUnlock()
	if len(names) == 0 {
		names = registry.order
	}
	rules := make([]Rule, 0, len(names))
	for _, name := range names {
		r, ok := registry.rules[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRule, name)
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// RuleNames returns the names of all registered rules in registration order.
func RuleNames() []string {
	registry.RLock()
	defer registry.RUnlock()
	names := make([]string, len(registry.order))
	copy(names, registry.order)
	return names
}

func init() {
	if err := Register(WinMetricsRule); err != nil {
		panic(err)
	}
}
