// Package rerr defines the structured error tree shared by every layer of
// the processing engine: stream, rule, regex, lexer, and parser.
//
// Every failure path in the engine produces an *Error. Composite rules
// never discard child failures: Or and Ref wrap them, and And returns
// the failing child's error unchanged, so a
// failing parse carries a full trace of what was tried and why, not just
// the deepest error.
package rerr
