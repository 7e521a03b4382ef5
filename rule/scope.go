package rule

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/davecarr1024/pysh4/rerr"
)

// Scope is an immutable mapping from rule name to Rule, used to resolve
// Ref at apply time. The zero Scope is empty.
type Scope[State, Result any] struct {
	rules map[string]Rule[State, Result]
}

// NewScope builds a Scope from the given rules. The Scope takes a private
// copy of the map; later mutation of rules does not affect the Scope.
func NewScope[State, Result any](rules map[string]Rule[State, Result]) Scope[State, Result] {
	return Scope[State, Result]{rules: maps.Clone(rules)}
}

// Get resolves name, failing with rerr.UnknownRule if it is absent.
func (s Scope[State, Result]) Get(name string) (Rule[State, Result], error) {
	r, ok := s.rules[name]
	if !ok {
		return nil, rerr.New(rerr.UnknownRule, "unknown rule %q", name)
	}
	return r, nil
}

// Len returns the number of rules bound in the scope.
func (s Scope[State, Result]) Len() int {
	return len(s.rules)
}

// Names returns the bound rule names in sorted order, for introspection
// and diagnostics.
func (s Scope[State, Result]) Names() []string {
	names := maps.Keys(s.rules)
	sort.Strings(names)
	return names
}

// Overlay merges outer and inner into a new Scope. Where both define a
// name, inner's binding wins: this is the "processor's own bindings win"
// precedence used by Processor.Apply, held consistent everywhere a scope
// is merged.
func Overlay[State, Result any](outer, inner Scope[State, Result]) Scope[State, Result] {
	merged := maps.Clone(outer.rules)
	if merged == nil {
		merged = map[string]Rule[State, Result]{}
	}
	for name, r := range inner.rules {
		merged[name] = r
	}
	return Scope[State, Result]{rules: merged}
}

// Processor is a Scope paired with a distinguished root rule name: the
// top-level invocation point for a grammar.
type Processor[State, Result any] struct {
	scope Scope[State, Result]
	root  string
}

// NewProcessor builds a Processor, failing with rerr.InvalidConstruction
// if root does not name a rule in rules.
func NewProcessor[State, Result any](rules map[string]Rule[State, Result], root string) (Processor[State, Result], error) {
	scope := NewScope(rules)
	if _, err := scope.Get(root); err != nil {
		return Processor[State, Result]{}, rerr.New(rerr.InvalidConstruction, "root rule %q not defined", root)
	}
	return Processor[State, Result]{scope: scope, root: root}, nil
}

// Scope returns the processor's own scope.
func (p Processor[State, Result]) Scope() Scope[State, Result] {
	return p.scope
}

// Root returns the processor's root rule name.
func (p Processor[State, Result]) Root() string {
	return p.root
}

// Apply merges callerScope with the processor's own scope (the
// processor's bindings win on conflict, per Overlay) and applies the root
// rule against state.
func (p Processor[State, Result]) Apply(callerScope Scope[State, Result], state State) (State, Result, error) {
	effective := Overlay(callerScope, p.scope)
	root, err := effective.Get(p.root)
	if err != nil {
		var zero Result
		return state, zero, err
	}
	return root(effective, state)
}
