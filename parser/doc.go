// Package parser instantiates the rule algebra (package rule) a third
// time: State is lexer.TokenStream and Result is whatever type the
// caller's grammar produces (an AST node, a string, whatever the
// top-level rule returns). Unlike regex and lexer, parser does not fix
// Result to a single type, since a grammar's shape is entirely up to its
// caller.
//
// GetTokenValue and ConsumeToken are the only primitives: every other
// rule in a grammar is built from them and from package rule's
// combinators (Or, And, ZeroOrMore, ...). Parse wraps a Parser's root
// rule with a check that the whole TokenStream was consumed, per
// rerr.UnconsumedInput.
package parser
