package lexer

import (
	"fmt"
	"strings"

	"github.com/davecarr1024/pysh4/rerr"
	"github.com/davecarr1024/pysh4/regex"
	"github.com/davecarr1024/pysh4/rule"
	"github.com/davecarr1024/pysh4/stream"
)

// reservedPrefix is the sentinel namespace construction refuses to let a
// caller-supplied rule name collide with, reserved for names the lexer
// itself may need to synthesize.
const reservedPrefix = "_lexer"

// skipPrefix marks a rule as a skip rule: its match advances the stream
// but is not emitted as a Token.
const skipPrefix = "_"

// Position identifies a character's line and column in the original
// source, both 1-based.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Char is a single character annotated with its position in the source.
// It embeds regex.Char, so it satisfies regex.CharLike by promotion and
// every compiled regex.Rule[Char] runs directly over a stream of Char
// with no adaptation.
type Char struct {
	regex.Char
	Pos Position
}

func (c Char) String() string {
	return c.Char.String()
}

// Token is a single lexical unit: the name of the rule that produced it,
// the text it matched, and the position of its first character.
type Token struct {
	Rule  string
	Value string
	Pos   Position
}

func (t Token) String() string {
	return t.Value
}

// TokenStream is not a Result of the Lexer's underlying rule algebra
// (rules here produce the matched text as a string); it is the sequence
// of Tokens a full Lex call accumulates, and composes under
// stream.Concat the same way an input stream does.
type TokenStream = stream.Stream[Token]

// CharStream is the State a Lexer's rules are applied against.
type CharStream = stream.Stream[Char]

// NamedRule pairs a regex rule with the name it should be reported under.
// A name starting with skipPrefix ("_") marks a skip rule.
type NamedRule struct {
	Name string
	Rule regex.Rule[Char]
}

// Skip reports whether this rule's matches should be discarded rather
// than emitted as Tokens.
func (n NamedRule) Skip() bool {
	return strings.HasPrefix(n.Name, skipPrefix)
}

// Option configures a Lexer at construction time.
type Option func(*Lexer)

// WithTabWidth sets how many columns a tab character advances; the
// default is 1 (a tab counts as a single column, like any other rune).
func WithTabWidth(width int) Option {
	return func(l *Lexer) {
		l.tabWidth = width
	}
}

// Lexer tokenizes source text by repeatedly trying an ordered list of
// named regex rules at the current position and taking the first match,
// PEG-style: rule order is significant and no backtracking happens once
// a rule matches.
type Lexer struct {
	rules    []NamedRule
	tabWidth int
}

// New builds a Lexer from rules, applied in the given order at every
// position. Construction fails with rerr.InvalidConstruction if two
// rules share a name, or if any rule's name starts with the reserved
// "_lexer" sentinel.
func New(rules []NamedRule, opts ...Option) (*Lexer, error) {
	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		if strings.HasPrefix(r.Name, reservedPrefix) {
			return nil, rerr.New(rerr.InvalidConstruction, "rule name %q collides with the reserved %q namespace", r.Name, reservedPrefix)
		}
		if seen[r.Name] {
			return nil, rerr.New(rerr.InvalidConstruction, "duplicate lexer rule name %q", r.Name)
		}
		seen[r.Name] = true
	}
	l := &Lexer{rules: append([]NamedRule(nil), rules...), tabWidth: 1}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Chars converts src into a CharStream, assigning each rune its 1-based
// line and column.
func (l *Lexer) Chars(src string) CharStream {
	chars := make([]Char, 0, len(src))
	line, col := 1, 1
	for _, r := range src {
		chars = append(chars, Char{Char: regex.Char{Rune: r}, Pos: Position{Line: line, Column: col}})
		if r == '\n' {
			line++
			col = 1
		} else if r == '\t' {
			col += l.tabWidth
		} else {
			col++
		}
	}
	return stream.New(chars...)
}

// Lex tokenizes src in full, failing with rerr.HeadMismatch if no rule
// matches at some position before the input is exhausted.
func (l *Lexer) Lex(src string) (TokenStream, error) {
	return l.LexStream(l.Chars(src))
}

// LexStream tokenizes state in full. It never backtracks across
// positions: once a position is consumed by a matching rule, lexing
// continues strictly from the character after the match.
func (l *Lexer) LexStream(state CharStream) (TokenStream, error) {
	var tokens []Token
	cur := state
	scope := l.scope()
	for !cur.Empty() {
		head, _ := cur.Head()
		matched := false
		for _, r := range l.rules {
			nextState, value, err := r.Rule(scope, cur)
			if err != nil {
				continue
			}
			if !r.Skip() {
				tokens = append(tokens, Token{Rule: r.Name, Value: value, Pos: head.Pos})
			}
			cur = nextState
			matched = true
			break
		}
		if !matched {
			return stream.New[Token](), rerr.New(rerr.HeadMismatch, "no rule matched at %s, tried %s", head.Pos, describeAttempt(l.rules)).WithState(cur)
		}
	}
	return stream.New(tokens...), nil
}

// scope builds the (empty) rule.Scope each rule is applied under: lexer
// rules are flat and never reference each other by name, so no bindings
// are needed.
func (l *Lexer) scope() rule.Scope[CharStream, string] {
	return rule.NewScope(map[string]rule.Rule[CharStream, string]{})
}
