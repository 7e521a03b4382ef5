// Package pysh4 is a text-processing engine built around one abstraction
// — a rule, a function from (scope, state) to (next state, result) that
// may fail — instantiated three times over in its subpackages:
//
//   - package regex matches characters and produces text.
//   - package lexer matches characters and produces tokens.
//   - package parser matches tokens and produces caller-defined results.
//
// package rule holds the shared algebra (Ref, Or, And, the repetition
// combinators) and the Scope/Processor types that let rules reference
// each other recursively. package stream is the immutable sequence
// every rule consumes. package rerr is the structured error tree every
// layer fails into. package compiler parses the regex pattern
// mini-language (e.g. `(ab|cd)*`) by running it through lexer and
// parser, closing the loop back onto regex.
//
// There is no persisted state, no wire protocol, and no CLI here: this
// module is the core engine only.
package pysh4
