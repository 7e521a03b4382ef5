package compiler

import (
	"github.com/davecarr1024/pysh4/lexer"
	"github.com/davecarr1024/pysh4/parser"
	"github.com/davecarr1024/pysh4/regex"
	"github.com/davecarr1024/pysh4/rerr"
)

// Compile parses pattern into a regex.Rule[C], per the operator grammar:
//
//	x            Literal(x), for x not in the operator alphabet
//	.            Any
//	[a-b]        Range(a, b)
//	\w           whitespace class
//	\X           Literal(X), for X an operator
//	(r1r2...)    grouping
//	(r1|r2|...)  Or
//	r*  r+  r?  r!   ZeroOrMore/OneOrMore/ZeroOrOne/UntilEmpty
//	^r           Not(r)
//	r1 r2        implicit And (juxtaposition)
func Compile[C regex.CharLike](pattern string) (regex.Rule[C], error) {
	lex, err := patternLexer()
	if err != nil {
		return nil, err
	}
	tokens, err := lex.Lex(pattern)
	if err != nil {
		return nil, rerr.Wrap(rerr.InvalidConstruction, err).WithState(pattern)
	}
	g := grammar[C]{}
	p, err := parser.New(map[string]parser.Rule[regex.Rule[C]]{
		"pattern": g.alt,
	}, "pattern")
	if err != nil {
		return nil, err
	}
	return parser.Parse(p, tokens)
}

// NewLexer compiles each rule's pattern with Compile and assembles the
// results into a lexer.Lexer, so pattern-string lexer configuration (the
// ordinary way to describe a lexer) doesn't require callers to build
// regex.Rule values by hand.
func NewLexer(rules []PatternRule, opts ...lexer.Option) (*lexer.Lexer, error) {
	named := make([]lexer.NamedRule, 0, len(rules))
	for _, r := range rules {
		compiled, err := Compile[lexer.Char](r.Pattern)
		if err != nil {
			return nil, rerr.Wrap(rerr.InvalidConstruction, err).WithRuleName(r.Name)
		}
		named = append(named, lexer.Rule(r.Name, compiled))
	}
	return lexer.New(named, opts...)
}

// PatternRule pairs a lexer rule name with the pattern-string syntax
// Compile understands, for use with NewLexer.
type PatternRule struct {
	Name    string
	Pattern string
}

// grammar hosts the pattern mini-language's rules as methods so they can
// recurse into each other (atom into pattern, for groups) without being
// registered in a parser.Scope — the grammar is closed and never
// extended by a caller, so there is nothing for a scope to override.
type grammar[C regex.CharLike] struct{}

// alt := seq ('|' seq)*
func (g grammar[C]) alt(scope parser.Scope[regex.Rule[C]], state parser.State) (parser.State, regex.Rule[C], error) {
	cur, first, err := g.seq(scope, state)
	if err != nil {
		var zero regex.Rule[C]
		return state, zero, err
	}
	alternatives := []regex.Rule[C]{first}
	for {
		next, err := parser.ConsumeToken(cur, "pipe")
		if err != nil {
			break
		}
		afterSeq, r, err := g.seq(scope, next)
		if err != nil {
			var zero regex.Rule[C]
			return state, zero, err
		}
		cur = afterSeq
		alternatives = append(alternatives, r)
	}
	if len(alternatives) == 1 {
		return cur, alternatives[0], nil
	}
	return cur, regex.Or[C](alternatives...), nil
}

// seq := term+, combined as an implicit And.
func (g grammar[C]) seq(scope parser.Scope[regex.Rule[C]], state parser.State) (parser.State, regex.Rule[C], error) {
	cur, first, err := g.term(scope, state)
	if err != nil {
		var zero regex.Rule[C]
		return state, zero, err
	}
	terms := []regex.Rule[C]{first}
	for {
		next, r, err := g.term(scope, cur)
		if err != nil {
			break
		}
		cur = next
		terms = append(terms, r)
	}
	if len(terms) == 1 {
		return cur, terms[0], nil
	}
	return cur, regex.And[C](terms...), nil
}

// term := atom ('*' | '+' | '?' | '!')*
func (g grammar[C]) term(scope parser.Scope[regex.Rule[C]], state parser.State) (parser.State, regex.Rule[C], error) {
	cur, r, err := g.atom(scope, state)
	if err != nil {
		var zero regex.Rule[C]
		return state, zero, err
	}
	for {
		switch {
		case tryConsume(&cur, "star"):
			r = regex.ZeroOrMore[C](r)
		case tryConsume(&cur, "plus"):
			r = regex.OneOrMore[C](r)
		case tryConsume(&cur, "question"):
			r = regex.ZeroOrOne[C](r)
		case tryConsume(&cur, "bang"):
			r = regex.UntilEmpty[C](r)
		default:
			return cur, r, nil
		}
	}
}

// firstRune returns the first rune of s, for single-character token
// values (the "char" rule always matches exactly one rune).
func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// tryConsume consumes a token named name from *state if present, and
// reports whether it did, updating *state only on success.
func tryConsume(state *parser.State, name string) bool {
	next, err := parser.ConsumeToken(*state, name)
	if err != nil {
		return false
	}
	*state = next
	return true
}

// atom := char | '.' | escape | '[' char '-' char ']' | '^' atom | '(' alt ')'
func (g grammar[C]) atom(scope parser.Scope[regex.Rule[C]], state parser.State) (parser.State, regex.Rule[C], error) {
	var zero regex.Rule[C]

	if next, value, err := parser.GetTokenValue(state, "char"); err == nil {
		return next, regex.Literal[C](firstRune(value)), nil
	}

	if next, err := parser.ConsumeToken(state, "dot"); err == nil {
		return next, regex.Any[C](), nil
	}

	if next, value, err := parser.GetTokenValue(state, "escape"); err == nil {
		escaped := []rune(value)[1]
		if escaped == 'w' {
			return next, regex.Whitespace[C](), nil
		}
		return next, regex.Literal[C](escaped), nil
	}

	if next, err := parser.ConsumeToken(state, "lbracket"); err == nil {
		next, lo, err := parser.GetTokenValue(next, "char")
		if err != nil {
			return state, zero, err
		}
		next, err = parser.ConsumeToken(next, "dash")
		if err != nil {
			return state, zero, err
		}
		next, hi, err := parser.GetTokenValue(next, "char")
		if err != nil {
			return state, zero, err
		}
		next, err = parser.ConsumeToken(next, "rbracket")
		if err != nil {
			return state, zero, err
		}
		r, err := regex.Range[C](firstRune(lo), firstRune(hi))
		if err != nil {
			return state, zero, err
		}
		return next, r, nil
	}

	if next, err := parser.ConsumeToken(state, "caret"); err == nil {
		after, inner, err := g.atom(scope, next)
		if err != nil {
			return state, zero, err
		}
		return after, regex.Not[C](inner), nil
	}

	if next, err := parser.ConsumeToken(state, "lparen"); err == nil {
		after, inner, err := g.alt(scope, next)
		if err != nil {
			return state, zero, err
		}
		after, err = parser.ConsumeToken(after, "rparen")
		if err != nil {
			return state, zero, err
		}
		return after, inner, nil
	}

	return state, zero, rerr.New(rerr.HeadMismatch, "expected an atom").WithState(state)
}
