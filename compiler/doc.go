// Package compiler implements the regex pattern mini-language: parsing a
// pattern string such as `(ab|cd)*` into a regex.Rule tree. It exists as
// its own package, separate from regex, because the pattern string is
// tokenized with package lexer and parsed with package parser, and
// lexer already imports regex for its character rules — so a Compile
// living inside regex itself would form an import cycle.
//
// The pattern lexer and grammar are themselves built entirely from
// regex primitives and the parser package's GetTokenValue/ConsumeToken,
// the same way any other grammar hosted on this engine would be: the
// pattern compiler is not special-cased machinery, it is the engine
// applied to its own configuration language.
package compiler
