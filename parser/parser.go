package parser

import (
	"github.com/davecarr1024/pysh4/lexer"
	"github.com/davecarr1024/pysh4/rerr"
	"github.com/davecarr1024/pysh4/rule"
)

// State is what every parser rule is applied against: a stream of
// lexer Tokens.
type State = lexer.TokenStream

// Rule is a parser rule producing Result from a TokenStream.
type Rule[Result any] = rule.Rule[State, Result]

// Scope is the name->rule binding a Rule's Ref resolves against.
type Scope[Result any] = rule.Scope[State, Result]

// GetTokenValue consumes exactly one token from the head of state,
// failing with rerr.HeadMismatch if its Rule does not equal
// expectedName, or rerr.EmptyStream if state is empty. On success it
// returns the remaining stream and the consumed token's Value.
func GetTokenValue(state State, expectedName string) (State, string, error) {
	head, err := state.Head()
	if err != nil {
		return state, "", rerr.New(rerr.EmptyStream, "expected token %q but input is exhausted", expectedName)
	}
	if head.Rule != expectedName {
		return state, "", rerr.New(rerr.HeadMismatch, "expected token %q but got %q %q", expectedName, head.Rule, head.Value).WithState(state)
	}
	tail, _ := state.Tail()
	return tail, head.Value, nil
}

// ConsumeToken is GetTokenValue without returning the matched value, for
// grammars that only care that a token was present (punctuation,
// keywords).
func ConsumeToken(state State, expectedName string) (State, error) {
	next, _, err := GetTokenValue(state, expectedName)
	return next, err
}

// Token builds a leaf Rule[Result] that consumes one token named name
// and converts its Value with convert.
func Token[Result any](name string, convert func(value string) (Result, error)) Rule[Result] {
	return func(scope Scope[Result], state State) (State, Result, error) {
		var zero Result
		next, value, err := GetTokenValue(state, name)
		if err != nil {
			return state, zero, err
		}
		result, err := convert(value)
		if err != nil {
			var zero2 Result
			return state, zero2, rerr.New(rerr.HeadMismatch, "token %q: %v", name, err).WithState(state)
		}
		return next, result, nil
	}
}

// Punct builds a leaf Rule[Result] that consumes one token named name
// and discards its value, producing the zero Result. Useful for
// punctuation and keywords inside an And where only some positions
// carry meaningful results.
func Punct[Result any](name string) Rule[Result] {
	return func(scope Scope[Result], state State) (State, Result, error) {
		var zero Result
		next, err := ConsumeToken(state, name)
		if err != nil {
			return state, zero, err
		}
		return next, zero, nil
	}
}

// Parser is a grammar: a scope of named rules plus a distinguished root.
type Parser[Result any] struct {
	processor rule.Processor[State, Result]
}

// New builds a Parser, failing with rerr.InvalidConstruction if root
// does not name a rule in rules.
func New[Result any](rules map[string]Rule[Result], root string) (Parser[Result], error) {
	p, err := rule.NewProcessor(rules, root)
	if err != nil {
		return Parser[Result]{}, err
	}
	return Parser[Result]{processor: p}, nil
}

// Parse applies the parser's root rule against tokens and fails with
// rerr.UnconsumedInput if the root rule succeeds but tokens remain
// afterward.
func Parse[Result any](p Parser[Result], tokens State) (Result, error) {
	var zero Result
	callerScope := rule.NewScope(map[string]Rule[Result]{})
	next, result, err := p.processor.Apply(callerScope, tokens)
	if err != nil {
		return zero, err
	}
	if !next.Empty() {
		return zero, rerr.New(rerr.UnconsumedInput, "unconsumed input: %d token(s) remaining", next.Len()).WithState(next)
	}
	return result, nil
}
