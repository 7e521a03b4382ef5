package rerr

import (
	"fmt"
	"strings"

	"github.com/alecthomas/repr"
)

// Kind identifies which failure shape an Error represents. Kinds are
// compared with ==, not with errors.Is, so callers can switch on them
// directly.
type Kind int

const (
	// EmptyStream is returned when an operation required a head item but
	// the state was empty.
	EmptyStream Kind = iota
	// HeadMismatch is returned when a head item failed a rule's predicate.
	HeadMismatch
	// UnknownRule is returned when a Reference names a rule absent from
	// the enclosing scope.
	UnknownRule
	// NoAlternativeMatched is returned when an Or rule exhausts every
	// alternative.
	NoAlternativeMatched
	// RuleContext wraps a child error with the name of the rule being
	// applied when it failed.
	RuleContext
	// NotViolated is returned when a negated rule's inner rule succeeds.
	NotViolated
	// InvalidConstruction is returned by rule/lexer/regex construction
	// that is rejected before any input is ever processed.
	InvalidConstruction
	// UnconsumedInput is returned when a parser's root rule succeeds but
	// leaves tokens behind.
	UnconsumedInput
	// NonProgress is returned by UntilEmpty when its inner rule succeeds
	// without consuming any input, which would otherwise loop forever.
	NonProgress
)

func (k Kind) String() string {
	switch k {
	case EmptyStream:
		return "empty stream"
	case HeadMismatch:
		return "head mismatch"
	case UnknownRule:
		return "unknown rule"
	case NoAlternativeMatched:
		return "no alternative matched"
	case RuleContext:
		return "rule context"
	case NotViolated:
		return "not violated"
	case InvalidConstruction:
		return "invalid construction"
	case UnconsumedInput:
		return "unconsumed input"
	case NonProgress:
		return "non-progress"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a tagged tree: an optional message, an optional rule name, an
// optional state snapshot (captured as a string so the type itself need
// not be generic over State), and an ordered list of child errors.
//
// Or with two or more alternatives aggregates every alternative's error
// as a child (a single-alternative Or passes its child's error through);
// Ref wraps exactly one child, and And returns the failing child's error
// itself. Only repetition rules (ZeroOrMore, OneOrMore after its first
// match, ZeroOrOne) swallow a terminating failure rather than surfacing
// it.
type Error struct {
	Kind     Kind
	Msg      string
	RuleName string
	State    string
	Children []error
}

// New constructs a leaf Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap constructs an Error of the given kind around zero or more
// children, preserving them unchanged and in order.
func Wrap(kind Kind, children ...error) *Error {
	return &Error{Kind: kind, Children: children}
}

// WithRuleName returns a copy of e annotated with the name of the rule
// that was being applied.
func (e *Error) WithRuleName(name string) *Error {
	cp := *e
	cp.RuleName = name
	return &cp
}

// WithState returns a copy of e annotated with a snapshot of the state at
// the point of failure. state is rendered with fmt.Sprintf("%v", ...) so
// any Stringer-capable stream works without making Error generic.
func (e *Error) WithState(state interface{}) *Error {
	cp := *e
	cp.State = fmt.Sprintf("%v", state)
	return &cp
}

func (e *Error) headline() string {
	var parts []string
	if e.RuleName != "" {
		parts = append(parts, fmt.Sprintf("in %s", e.RuleName))
	}
	if e.State != "" {
		parts = append(parts, fmt.Sprintf("at %s", e.State))
	}
	parts = append(parts, e.Kind.String())
	if e.Msg != "" {
		parts = append(parts, e.Msg)
	}
	return strings.Join(parts, ": ")
}

// Error implements the error interface with a single-line summary. Use
// Format for the full indented tree.
func (e *Error) Error() string {
	return e.headline()
}

// Unwrap exposes every child error for errors.Is/errors.As traversal.
func (e *Error) Unwrap() []error {
	return e.Children
}

// Format renders the error tree indented by depth, parent before
// children, preserving child order (so Or's tried alternatives remain in
// the order they were attempted).
func (e *Error) Format(depth int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(e.headline())
	b.WriteByte('\n')
	for _, child := range e.Children {
		if ce, ok := child.(*Error); ok {
			b.WriteString(ce.Format(depth + 1))
			continue
		}
		b.WriteString(strings.Repeat("  ", depth+1))
		b.WriteString(child.Error())
		b.WriteByte('\n')
	}
	return b.String()
}

// GoString renders the error tree as a Go-syntax-like structured dump,
// for use in test failure output and debug logging.
func (e *Error) GoString() string {
	return repr.String(e, repr.Indent("  "))
}
