package rule

import (
	"github.com/davecarr1024/pysh4/rerr"
	"github.com/davecarr1024/pysh4/stream"
)

// Rule is the central abstraction: a function from (scope, state) to
// (next state, result), or a failure. Rules are plain values — closures
// built once when a grammar is constructed and then applied repeatedly —
// so grammars are free to be recursive: a Reference closes over a name,
// not a pointer, and resolves it through the Scope at apply time.
type Rule[State, Result any] func(scope Scope[State, Result], state State) (State, Result, error)

// ResultCombiner folds a sequence of results collected by And or a
// repetition rule into one. Regex (and so the lexer's rules, which are
// regex rules) uses text concatenation, and parsers supply their own.
// The lexer does not fold Tokens with a ResultCombiner: it appends each
// Token to a slice as it lexes.
type ResultCombiner[Result any] func(results []Result) Result

// Ref resolves name in the scope at apply time and applies the resolved
// rule. An unresolved name fails immediately with rerr.UnknownRule and is
// not wrapped further — a missing rule is a grammar-construction defect,
// not a data-matching failure, so it should not be masked by an
// enclosing Or's aggregation (see Or below). Any other failure from the
// resolved rule is wrapped with rerr.RuleContext naming the rule that
// was being applied, so traces identify which named rule failed.
func Ref[State, Result any](name string) Rule[State, Result] {
	return func(scope Scope[State, Result], state State) (State, Result, error) {
		var zero Result
		resolved, err := scope.Get(name)
		if err != nil {
			return state, zero, err
		}
		nextState, result, err := resolved(scope, state)
		if err != nil {
			return state, zero, rerr.Wrap(rerr.RuleContext, err).WithRuleName(name)
		}
		return nextState, result, nil
	}
}

// Or tries each rule in order against the original state and commits to
// the first success (ordered choice, PEG-style: later alternatives are
// never attempted once an earlier one matches, even if a later one would
// consume more input). A single-rule Or is a pass-through, so a lone
// failing alternative (e.g. a single unresolved Ref) surfaces its own
// error kind rather than being wrapped in NoAlternativeMatched. An empty
// Or fails unconditionally. Or never consumes input when it fails.
func Or[State, Result any](rules ...Rule[State, Result]) Rule[State, Result] {
	return func(scope Scope[State, Result], state State) (State, Result, error) {
		var zero Result
		switch len(rules) {
		case 0:
			return state, zero, rerr.Wrap(rerr.NoAlternativeMatched).WithState(state)
		case 1:
			return rules[0](scope, state)
		}
		childErrors := make([]error, 0, len(rules))
		for _, r := range rules {
			nextState, result, err := r(scope, state)
			if err == nil {
				return nextState, result, nil
			}
			childErrors = append(childErrors, err)
		}
		return state, zero, rerr.Wrap(rerr.NoAlternativeMatched, childErrors...).WithState(state)
	}
}

// And threads state through rules in order, each receiving the state
// produced by the previous one, and folds their results with combiner.
// Any child failure fails the whole And with that one child error
// unchanged — the point of failure is authoritative, nothing is
// aggregated. And never consumes input when it fails. An empty And
// succeeds without advancing, producing combiner(nil).
func And[State, Result any](combiner ResultCombiner[Result], rules ...Rule[State, Result]) Rule[State, Result] {
	return func(scope Scope[State, Result], state State) (State, Result, error) {
		if len(rules) == 0 {
			return state, combiner(nil), nil
		}
		results := make([]Result, 0, len(rules))
		cur := state
		for _, r := range rules {
			nextState, result, err := r(scope, cur)
			if err != nil {
				var zero Result
				return state, zero, err
			}
			cur = nextState
			results = append(results, result)
		}
		return cur, combiner(results), nil
	}
}

// ZeroOrMore repeatedly applies r until it fails, then returns the state
// from before the failing attempt and the accumulated results combined.
// It never fails.
func ZeroOrMore[State, Result any](combiner ResultCombiner[Result], r Rule[State, Result]) Rule[State, Result] {
	return func(scope Scope[State, Result], state State) (State, Result, error) {
		var results []Result
		cur := state
		for {
			nextState, result, err := r(scope, cur)
			if err != nil {
				return cur, combiner(results), nil
			}
			cur = nextState
			results = append(results, result)
		}
	}
}

// OneOrMore is equivalent to And(r, ZeroOrMore(r)): it fails exactly when
// the first application of r fails, then behaves like ZeroOrMore for any
// further applications.
func OneOrMore[State, Result any](combiner ResultCombiner[Result], r Rule[State, Result]) Rule[State, Result] {
	return func(scope Scope[State, Result], state State) (State, Result, error) {
		nextState, first, err := r(scope, state)
		if err != nil {
			var zero Result
			return state, zero, err
		}
		results := []Result{first}
		cur := nextState
		for {
			ns, result, err := r(scope, cur)
			if err != nil {
				return cur, combiner(results), nil
			}
			cur = ns
			results = append(results, result)
		}
	}
}

// ZeroOrOne applies r once; on failure it returns the original state and
// combiner(nil) rather than failing.
func ZeroOrOne[State, Result any](combiner ResultCombiner[Result], r Rule[State, Result]) Rule[State, Result] {
	return func(scope Scope[State, Result], state State) (State, Result, error) {
		nextState, result, err := r(scope, state)
		if err != nil {
			return state, combiner(nil), nil
		}
		return nextState, result, nil
	}
}

// UntilEmpty repeats r while the stream is non-empty, combining the
// collected results once the stream becomes empty. It fails if r fails
// while the stream is still non-empty, and it fails with rerr.NonProgress
// if r succeeds without consuming any input — otherwise it would loop
// forever.
func UntilEmpty[Item, Result any](combiner ResultCombiner[Result], r Rule[stream.Stream[Item], Result]) Rule[stream.Stream[Item], Result] {
	return func(scope Scope[stream.Stream[Item], Result], state stream.Stream[Item]) (stream.Stream[Item], Result, error) {
		var results []Result
		cur := state
		for !cur.Empty() {
			lenBefore := cur.Len()
			nextState, result, err := r(scope, cur)
			if err != nil {
				var zero Result
				return state, zero, err
			}
			if nextState.Len() == lenBefore {
				var zero Result
				return state, zero, rerr.New(rerr.NonProgress, "rule succeeded without consuming input").WithState(cur)
			}
			cur = nextState
			results = append(results, result)
		}
		return cur, combiner(results), nil
	}
}

// HeadRule builds a leaf rule that consumes exactly one item from the
// stream's head. predicate is given the head item and either returns a
// result or an error describing why the item was rejected; HeadRule
// turns that rejection into an rerr.HeadMismatch and never consumes
// input on failure. On an empty stream it fails with rerr.EmptyStream,
// never rerr.HeadMismatch.
func HeadRule[Item, Result any](describe string, predicate func(Item) (Result, error)) Rule[stream.Stream[Item], Result] {
	return func(scope Scope[stream.Stream[Item], Result], state stream.Stream[Item]) (stream.Stream[Item], Result, error) {
		var zero Result
		head, err := state.Head()
		if err != nil {
			return state, zero, rerr.New(rerr.EmptyStream, "empty stream").WithState(state)
		}
		result, err := predicate(head)
		if err != nil {
			return state, zero, rerr.New(rerr.HeadMismatch, "%s: %v", describe, err).WithState(state)
		}
		tail, _ := state.Tail()
		return tail, result, nil
	}
}

// Not succeeds iff r fails against the current head and the stream is
// non-empty; it consumes exactly one item and produces resultFor(head)
// regardless of what r is. It fails with rerr.EmptyStream on an empty
// stream and rerr.NotViolated if r unexpectedly succeeds.
func Not[Item, Result any](r Rule[stream.Stream[Item], Result], resultFor func(Item) Result) Rule[stream.Stream[Item], Result] {
	return func(scope Scope[stream.Stream[Item], Result], state stream.Stream[Item]) (stream.Stream[Item], Result, error) {
		var zero Result
		head, err := state.Head()
		if err != nil {
			return state, zero, rerr.New(rerr.EmptyStream, "empty stream").WithState(state)
		}
		if _, _, err := r(scope, state); err == nil {
			return state, zero, rerr.New(rerr.NotViolated, "rule matched under negation").WithState(state)
		}
		tail, _ := state.Tail()
		return tail, resultFor(head), nil
	}
}
