package parser_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davecarr1024/pysh4/lexer"
	"github.com/davecarr1024/pysh4/parser"
	"github.com/davecarr1024/pysh4/regex"
	"github.com/davecarr1024/pysh4/rule"
)

func exprLexer(t *testing.T) *lexer.Lexer {
	t.Helper()
	digit, err := regex.Range[lexer.Char]('0', '9')
	require.NoError(t, err)
	l, err := lexer.New([]lexer.NamedRule{
		lexer.Skip("ws", regex.OneOrMore[lexer.Char](regex.Whitespace[lexer.Char]())),
		lexer.Rule("int", regex.OneOrMore[lexer.Char](digit)),
		lexer.Rule("lparen", regex.Literal[lexer.Char]('(')),
		lexer.Rule("rparen", regex.Literal[lexer.Char](')')),
	})
	require.NoError(t, err)
	return l
}

func TestExprGrammarParsesIntLiteral(t *testing.T) {
	l := exprLexer(t)
	tokens, err := l.Lex("5")
	require.NoError(t, err)

	rules := exprRules()
	p, err := parser.New(rules, "expr")
	require.NoError(t, err)

	result, err := parser.Parse(p, tokens)
	require.NoError(t, err)
	assert.Equal(t, 5, result)
}

func TestExprGrammarParsesParenthesizedExpr(t *testing.T) {
	l := exprLexer(t)
	tokens, err := l.Lex("((7))")
	require.NoError(t, err)

	rules := exprRules()
	p, err := parser.New(rules, "expr")
	require.NoError(t, err)

	result, err := parser.Parse(p, tokens)
	require.NoError(t, err)
	assert.Equal(t, 7, result)
}

func TestExprGrammarFailsOnUnconsumedInput(t *testing.T) {
	l := exprLexer(t)
	tokens, err := l.Lex("5 5")
	require.NoError(t, err)

	rules := exprRules()
	p, err := parser.New(rules, "expr")
	require.NoError(t, err)

	_, err = parser.Parse(p, tokens)
	require.Error(t, err)
}

func TestExprGrammarFailsOnUnmatchedParen(t *testing.T) {
	l := exprLexer(t)
	tokens, err := l.Lex("(5")
	require.NoError(t, err)

	rules := exprRules()
	p, err := parser.New(rules, "expr")
	require.NoError(t, err)

	_, err = parser.Parse(p, tokens)
	require.Error(t, err)
}

// exprRules builds `expr := int | '(' expr ')'`.
func exprRules() map[string]parser.Rule[int] {
	intRule := parser.Token[int]("int", func(value string) (int, error) {
		return strconv.Atoi(value)
	})
	grouped := rule.And(
		func(results []int) int { return results[1] },
		parser.Punct[int]("lparen"),
		rule.Ref[parser.State, int]("expr"),
		parser.Punct[int]("rparen"),
	)
	return map[string]parser.Rule[int]{
		"expr": rule.Or(intRule, grouped),
	}
}
