package rules

// Registry holds all registered rules. Rules are registered explicitly at
// startup; there is no dynamic discovery. Registration order is significant:
// the engine merges results in this order so runs are deterministic.
type Registry struct {
	rules []Rule
}

// NewRegistry creates a new rule registry
func NewRegistry() *Registry {
	return &Registry{
		rules: make([]Rule, 0),
	}
}

// Register adds a rule to the registry
func (r *Registry) Register(rule Rule) {
	r.rules = append(r.rules, rule)
}

// Rules returns all registered rules in registration order
func (r *Registry) Rules() []Rule {
	return r.rules
}

// Get returns a rule by ID, or nil if not registered
func (r *Registry) Get(id string) Rule {
	for _, rule := range r.rules {
		if rule.ID() == id {
			return rule
		}
	}
	return nil
}

// Without returns a copy of the registry with the named rule families and
// IDs removed. Used to honor the disabled_rules config list.
func (r *Registry) Without(disabled []string) *Registry {
	if len(disabled) == 0 {
		return r
	}

	skip := make(map[string]bool, len(disabled))
	for _, d := range disabled {
		skip[d] = true
	}

	out := NewRegistry()
	for _, rule := range r.rules {
		if skip[rule.ID()] || skip[Family(rule.ID())] {
			continue
		}
		out.Register(rule)
	}
	return out
}

// DefaultRegistry returns a registry with all builtin rules
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(NewLongSentenceRule())
	r.Register(&WeaselWordsRule{})
	r.Register(&PassiveVoiceRule{})
	r.Register(&RepeatedWordRule{})
	r.Register(&ClicheRule{})
	r.Register(&AdverbRule{})

	return r
}
