package regex

import (
	"fmt"
	"strings"

	"github.com/davecarr1024/pysh4/rerr"
	"github.com/davecarr1024/pysh4/rule"
	"github.com/davecarr1024/pysh4/stream"
)

// CharLike is anything that carries a single rune value. regex's rules
// are generic over it so that a type which adds more to a character (the
// lexer's Char adds a Position, see package lexer) can still be matched
// directly by the same compiled regex rules, with no adaptation step.
type CharLike interface {
	RuneValue() rune
}

// Char is the plain character type used when matching against a bare
// stream.Stream[Char] (as opposed to the lexer's position-carrying
// variant).
type Char struct {
	Rune rune
}

// RuneValue implements CharLike.
func (c Char) RuneValue() rune {
	return c.Rune
}

func (c Char) String() string {
	return string(c.Rune)
}

// CharStream is the state a regex Rule consumes.
type CharStream[C CharLike] = stream.Stream[C]

// Rule is a regex rule over a stream of C. It produces text, combined
// under concatenation with the empty string as identity.
type Rule[C CharLike] = rule.Rule[CharStream[C], string]

// ConcatText is the regex layer's ResultCombiner: string concatenation.
func ConcatText(results []string) string {
	return strings.Join(results, "")
}

// Literal matches exactly one occurrence of value.
func Literal[C CharLike](value rune) Rule[C] {
	return rule.HeadRule[C, string](fmt.Sprintf("literal %q", string(value)), func(c C) (string, error) {
		if c.RuneValue() != value {
			return "", fmt.Errorf("expected %q but got %q", value, c.RuneValue())
		}
		return string(c.RuneValue()), nil
	})
}

// Any matches any single character.
func Any[C CharLike]() Rule[C] {
	return rule.HeadRule[C, string]("any", func(c C) (string, error) {
		return string(c.RuneValue()), nil
	})
}

// Class matches membership in a finite set of runes. Construction fails
// with rerr.InvalidConstruction if values is empty.
func Class[C CharLike](values []rune) (Rule[C], error) {
	if len(values) == 0 {
		return nil, rerr.New(rerr.InvalidConstruction, "empty character class")
	}
	set := make(map[rune]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	describe := fmt.Sprintf("class %q", string(values))
	return rule.HeadRule[C, string](describe, func(c C) (string, error) {
		if !set[c.RuneValue()] {
			return "", fmt.Errorf("expected one of %q but got %q", string(values), c.RuneValue())
		}
		return string(c.RuneValue()), nil
	}), nil
}

// whitespaceRunes is the exact set the original implementation treats as
// whitespace for the \w pattern escape: not a Unicode-aware definition,
// matching the Non-goal excluding Unicode character classes.
var whitespaceRunes = []rune(" \t\n\r\f\v")

// Whitespace matches a single whitespace character, as \w compiles to.
func Whitespace[C CharLike]() Rule[C] {
	r, err := Class[C](whitespaceRunes)
	if err != nil {
		// whitespaceRunes is a fixed non-empty literal; this can't fail.
		panic(err)
	}
	return r
}

// Range matches a single character in [lo, hi]. Construction fails with
// rerr.InvalidConstruction if hi < lo.
func Range[C CharLike](lo, hi rune) (Rule[C], error) {
	if hi < lo {
		return nil, rerr.New(rerr.InvalidConstruction, "invalid range [%c-%c]", lo, hi)
	}
	describe := fmt.Sprintf("range [%c-%c]", lo, hi)
	return rule.HeadRule[C, string](describe, func(c C) (string, error) {
		if c.RuneValue() < lo || c.RuneValue() > hi {
			return "", fmt.Errorf("expected in [%c-%c] but got %q", lo, hi, c.RuneValue())
		}
		return string(c.RuneValue()), nil
	}), nil
}

// Not succeeds iff r fails against the current head, consuming exactly
// one character and producing its text.
func Not[C CharLike](r Rule[C]) Rule[C] {
	return rule.Not[C, string](r, func(c C) string { return string(c.RuneValue()) })
}

// And sequences rules, concatenating their matched text.
func And[C CharLike](rules ...Rule[C]) Rule[C] {
	return rule.And(ConcatText, rules...)
}

// Or tries rules in order, committing to the first match.
func Or[C CharLike](rules ...Rule[C]) Rule[C] {
	return rule.Or(rules...)
}

// ZeroOrMore repeats r, concatenating zero or more matches.
func ZeroOrMore[C CharLike](r Rule[C]) Rule[C] {
	return rule.ZeroOrMore(ConcatText, r)
}

// OneOrMore repeats r, concatenating one or more matches; fails if r
// does not match at least once.
func OneOrMore[C CharLike](r Rule[C]) Rule[C] {
	return rule.OneOrMore(ConcatText, r)
}

// ZeroOrOne applies r at most once.
func ZeroOrOne[C CharLike](r Rule[C]) Rule[C] {
	return rule.ZeroOrOne(ConcatText, r)
}

// UntilEmpty repeats r until the stream is empty.
func UntilEmpty[C CharLike](r Rule[C]) Rule[C] {
	return rule.UntilEmpty[C, string](ConcatText, r)
}
