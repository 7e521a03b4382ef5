// Package regex instantiates the rule algebra (package rule) over
// character streams with text results: State is stream.Stream[C] for any
// C satisfying CharLike, and Result is string, combined by concatenation.
//
// Primitives (Literal, Any, Class, Range, Not) are leaf HeadRules;
// composites (And, Or, ZeroOrMore, OneOrMore, ZeroOrOne, UntilEmpty) are
// thin wrappers around package rule's combinators with a
// text-concatenation ResultCombiner. The package is generic in C rather
// than fixed to a plain rune so that the lexer can run the very same
// compiled rules directly over its own position-carrying character type
// without copying or adapting streams — see package lexer's Char, which
// embeds regex.Char and so satisfies CharLike for free.
package regex
