// Package stream implements an immutable, finite, ordered sequence used
// as the state threaded through every rule in the engine: a character
// stream for the regex layer, a character-with-position stream for the
// lexer, and a token stream for the parser.
//
// Streams never mutate in place. Progress through a stream is represented
// by taking its Tail, which returns a new, shorter Stream; the original is
// left untouched, which is what lets Or try several rules against the
// same starting state.
package stream
