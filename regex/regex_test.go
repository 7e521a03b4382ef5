package regex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davecarr1024/pysh4/regex"
	"github.com/davecarr1024/pysh4/rule"
	"github.com/davecarr1024/pysh4/stream"
)

func charStream(s string) stream.Stream[regex.Char] {
	chars := make([]regex.Char, 0, len(s))
	for _, r := range s {
		chars = append(chars, regex.Char{Rune: r})
	}
	return stream.New(chars...)
}

func emptyScope() rule.Scope[stream.Stream[regex.Char], string] {
	return rule.NewScope(map[string]rule.Rule[stream.Stream[regex.Char], string]{})
}

func TestLiteral(t *testing.T) {
	r := regex.Literal[regex.Char]('a')
	next, result, err := r(emptyScope(), charStream("abc"))
	require.NoError(t, err)
	assert.Equal(t, "a", result)
	assert.Equal(t, 2, next.Len())
}

func TestLiteralMismatch(t *testing.T) {
	r := regex.Literal[regex.Char]('a')
	_, _, err := r(emptyScope(), charStream("b"))
	require.Error(t, err)
}

func TestAny(t *testing.T) {
	r := regex.Any[regex.Char]()
	_, result, err := r(emptyScope(), charStream("x"))
	require.NoError(t, err)
	assert.Equal(t, "x", result)
}

func TestClassRejectsEmpty(t *testing.T) {
	_, err := regex.Class[regex.Char](nil)
	require.Error(t, err)
}

func TestClassMatches(t *testing.T) {
	r, err := regex.Class[regex.Char]([]rune("abc"))
	require.NoError(t, err)
	_, result, err := r(emptyScope(), charStream("b"))
	require.NoError(t, err)
	assert.Equal(t, "b", result)
}

func TestRangeRejectsReversed(t *testing.T) {
	_, err := regex.Range[regex.Char]('c', 'a')
	require.Error(t, err)
}

func TestRangeMatches(t *testing.T) {
	r, err := regex.Range[regex.Char]('a', 'c')
	require.NoError(t, err)
	_, result, err := r(emptyScope(), charStream("b"))
	require.NoError(t, err)
	assert.Equal(t, "b", result)

	_, _, err = r(emptyScope(), charStream("d"))
	require.Error(t, err)
}

func TestWhitespace(t *testing.T) {
	r := regex.Whitespace[regex.Char]()
	_, result, err := r(emptyScope(), charStream(" x"))
	require.NoError(t, err)
	assert.Equal(t, " ", result)

	_, _, err = r(emptyScope(), charStream("x"))
	require.Error(t, err)
}

func TestNotConsumesOneCharWhenInnerFails(t *testing.T) {
	r := regex.Not[regex.Char](regex.Literal[regex.Char]('a'))
	next, result, err := r(emptyScope(), charStream("bc"))
	require.NoError(t, err)
	assert.Equal(t, "b", result)
	assert.Equal(t, 1, next.Len())
}

func TestNotFailsWhenInnerMatches(t *testing.T) {
	r := regex.Not[regex.Char](regex.Literal[regex.Char]('a'))
	_, _, err := r(emptyScope(), charStream("ab"))
	require.Error(t, err)
}

func TestAndConcatenates(t *testing.T) {
	r := regex.And[regex.Char](
		regex.Literal[regex.Char]('a'),
		regex.Literal[regex.Char]('b'),
	)
	next, result, err := r(emptyScope(), charStream("abc"))
	require.NoError(t, err)
	assert.Equal(t, "ab", result)
	assert.Equal(t, 1, next.Len())
}

func TestOrCommitsToFirstMatch(t *testing.T) {
	r := regex.Or[regex.Char](
		regex.Literal[regex.Char]('a'),
		regex.Literal[regex.Char]('b'),
	)
	_, result, err := r(emptyScope(), charStream("b"))
	require.NoError(t, err)
	assert.Equal(t, "b", result)
}

func TestZeroOrMoreAndOneOrMore(t *testing.T) {
	zom := regex.ZeroOrMore[regex.Char](regex.Literal[regex.Char]('a'))
	next, result, err := zom(emptyScope(), charStream("aaab"))
	require.NoError(t, err)
	assert.Equal(t, "aaa", result)
	assert.Equal(t, 1, next.Len())

	oom := regex.OneOrMore[regex.Char](regex.Literal[regex.Char]('a'))
	_, _, err = oom(emptyScope(), charStream("b"))
	require.Error(t, err)
}

// Round-trip table from the regex engine's testable-property matrix:
// pattern behavior expressed directly against rule combinators (the
// bootstrap compiler in package compiler covers the pattern-string
// syntax end to end).
func TestRegexRoundTripTable(t *testing.T) {
	cases := []struct {
		name      string
		rule      regex.Rule[regex.Char]
		input     string
		wantMatch string
		wantRest  string
		wantErr   bool
	}{
		{
			name:      "literal",
			rule:      regex.Literal[regex.Char]('a'),
			input:     "abc",
			wantMatch: "a",
			wantRest:  "bc",
		},
		{
			name:      "zero or more",
			rule:      regex.ZeroOrMore[regex.Char](regex.Literal[regex.Char]('a')),
			input:     "aaab",
			wantMatch: "aaa",
			wantRest:  "b",
		},
		{
			name:    "one or more fails",
			rule:    regex.OneOrMore[regex.Char](regex.Literal[regex.Char]('a')),
			input:   "b",
			wantErr: true,
		},
		{
			name:      "range",
			rule:      mustRange('a', 'c'),
			input:     "b",
			wantMatch: "b",
			wantRest:  "",
		},
		{
			name:      "whitespace",
			rule:      regex.Whitespace[regex.Char](),
			input:     " x",
			wantMatch: " ",
			wantRest:  "x",
		},
		{
			name: "or",
			rule: regex.Or[regex.Char](
				regex.And[regex.Char](regex.Literal[regex.Char]('a'), regex.Literal[regex.Char]('b')),
				regex.And[regex.Char](regex.Literal[regex.Char]('c'), regex.Literal[regex.Char]('d')),
			),
			input:     "cdef",
			wantMatch: "cd",
			wantRest:  "ef",
		},
		{
			name:      "not",
			rule:      regex.Not[regex.Char](regex.Literal[regex.Char]('a')),
			input:     "b",
			wantMatch: "b",
			wantRest:  "",
		},
		{
			name:      "any",
			rule:      regex.Any[regex.Char](),
			input:     "x",
			wantMatch: "x",
			wantRest:  "",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			next, result, err := c.rule(emptyScope(), charStream(c.input))
			if c.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.wantMatch, result)
			assert.Equal(t, c.wantRest, next.String())
		})
	}
}

func mustRange(lo, hi rune) regex.Rule[regex.Char] {
	r, err := regex.Range[regex.Char](lo, hi)
	if err != nil {
		panic(err)
	}
	return r
}
