package compiler

import (
	"github.com/davecarr1024/pysh4/lexer"
	"github.com/davecarr1024/pysh4/regex"
)

// operatorRunes is the pattern mini-language's closed operator alphabet:
// these cannot appear unescaped as literal characters.
var operatorRunes = []rune(".[-]\\()|*+?!^")

func patternLexer() (*lexer.Lexer, error) {
	notOperator, err := regex.Class[lexer.Char](operatorRunes)
	if err != nil {
		return nil, err
	}
	escape := regex.And[lexer.Char](
		regex.Literal[lexer.Char]('\\'),
		regex.Any[lexer.Char](),
	)
	return lexer.New([]lexer.NamedRule{
		lexer.Rule("escape", escape),
		lexer.Rule("dot", regex.Literal[lexer.Char]('.')),
		lexer.Rule("lbracket", regex.Literal[lexer.Char]('[')),
		lexer.Rule("dash", regex.Literal[lexer.Char]('-')),
		lexer.Rule("rbracket", regex.Literal[lexer.Char](']')),
		lexer.Rule("lparen", regex.Literal[lexer.Char]('(')),
		lexer.Rule("rparen", regex.Literal[lexer.Char](')')),
		lexer.Rule("pipe", regex.Literal[lexer.Char]('|')),
		lexer.Rule("star", regex.Literal[lexer.Char]('*')),
		lexer.Rule("plus", regex.Literal[lexer.Char]('+')),
		lexer.Rule("question", regex.Literal[lexer.Char]('?')),
		lexer.Rule("bang", regex.Literal[lexer.Char]('!')),
		lexer.Rule("caret", regex.Literal[lexer.Char]('^')),
		lexer.Rule("char", regex.Not[lexer.Char](notOperator)),
	})
}
