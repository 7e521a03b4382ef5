package lexer

import "fmt"

// describeAttempt renders the rule names a Lexer tried at a failing
// position, for inclusion in diagnostics alongside the rerr.HeadMismatch
// LexStream returns.
func describeAttempt(rules []NamedRule) string {
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.Name)
	}
	return fmt.Sprintf("%v", names)
}
