package lexer

import "github.com/davecarr1024/pysh4/regex"

// Rule builds a NamedRule for use with New. A name starting with "_" is
// a skip rule: it advances the lexer's position but is not emitted as a
// Token.
func Rule(name string, r regex.Rule[Char]) NamedRule {
	return NamedRule{Name: name, Rule: r}
}

// Skip builds a skip NamedRule, prefixing name with "_" if it is not
// already so prefixed.
func Skip(name string, r regex.Rule[Char]) NamedRule {
	if len(name) == 0 || name[0] != '_' {
		name = "_" + name
	}
	return NamedRule{Name: name, Rule: r}
}
