// Package rule implements the engine's rule algebra: the generic
// Rule[State, Result] abstraction and the combinators (Ref, Or, And,
// ZeroOrMore, OneOrMore, ZeroOrOne, UntilEmpty, Not, HeadRule) built on
// top of it, plus the Scope and Processor types used to resolve named
// references and invoke a grammar's root rule.
//
// This package is instantiated three times by the rest of the module:
// over a character stream with text results (package regex), over a
// positioned-character stream with text results (package lexer, whose
// own loop turns each match into a Token), and over a token stream with
// caller-chosen result types (package parser). regex and parser supply
// the State/Result type parameters and a ResultCombiner; the lexer runs
// regex rules directly and collects Tokens without a ResultCombiner.
package rule
