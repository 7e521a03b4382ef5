package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davecarr1024/pysh4/compiler"
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

func TestCompileRoundTripTable(t *testing.T) {
	cases := []struct {
		name      string
		pattern   string
		input     string
		wantMatch string
		wantRest  string
		wantErr   bool
	}{
		{name: "literal", pattern: "a", input: "abc", wantMatch: "a", wantRest: "bc"},
		{name: "zero or more", pattern: "a*", input: "aaab", wantMatch: "aaa", wantRest: "b"},
		{name: "one or more fails", pattern: "a+", input: "b", wantErr: true},
		{name: "range", pattern: "[a-c]", input: "b", wantMatch: "b", wantRest: ""},
		{name: "whitespace escape", pattern: `\w`, input: " x", wantMatch: " ", wantRest: "x"},
		{name: "grouped or", pattern: "(ab|cd)", input: "cdef", wantMatch: "cd", wantRest: "ef"},
		{name: "not", pattern: "^a", input: "b", wantMatch: "b", wantRest: ""},
		{name: "any", pattern: ".", input: "x", wantMatch: "x", wantRest: ""},
		{name: "escaped operator", pattern: `\(`, input: "(x", wantMatch: "(", wantRest: "x"},
		{name: "implicit and", pattern: "abc", input: "abcd", wantMatch: "abc", wantRest: "d"},
		{name: "optional present", pattern: "a?b", input: "ab", wantMatch: "ab", wantRest: ""},
		{name: "optional absent", pattern: "a?b", input: "b", wantMatch: "b", wantRest: ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := compiler.Compile[regex.Char](c.pattern)
			require.NoError(t, err)
			next, result, err := r(emptyScope(), charStream(c.input))
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

func TestCompileRejectsUnclosedGroup(t *testing.T) {
	_, err := compiler.Compile[regex.Char]("(ab")
	require.Error(t, err)
}

func TestCompileRejectsReversedRange(t *testing.T) {
	_, err := compiler.Compile[regex.Char]("[c-a]")
	require.Error(t, err)
}

func TestNewLexerBuildsFromPatternStrings(t *testing.T) {
	l, err := compiler.NewLexer([]compiler.PatternRule{
		{Name: "_ws", Pattern: `\w+`},
		{Name: "ident", Pattern: "[a-z]+"},
	})
	require.NoError(t, err)

	tokens, err := l.Lex("ab cd")
	require.NoError(t, err)
	items := tokens.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "ab", items[0].Value)
	assert.Equal(t, "cd", items[1].Value)
}
