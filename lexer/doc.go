// Package lexer instantiates the rule algebra (package rule) a second
// time: State is stream.Stream[Char], a position-carrying character, and
// Result is the matched text (string). A Lexer is an ordered list of
// named regex rules supplied at construction time; lexing repeatedly
// applies them at the current position until the input is exhausted,
// wrapping each match in a Token and appending it to the output, except
// for rules whose name starts with "_" (skip rules, typically whitespace
// and comments), whose matches are discarded.
//
// Char embeds regex.Char, so the exact same compiled regex.Rule values
// that match over a bare stream.Stream[regex.Char] also match directly
// over a stream.Stream[Char] — no adapter or copy step is needed to run
// a regex rule over positioned input.
package lexer
