package cfg

import (
	"strings"
	"testing"
	"unicode"
)

// grammarFrom builds a grammar from rules in single-character shorthand,
// e.g. "S := aB | ε". The first rule defines the start symbol.
func grammarFrom(t *testing.T, rules ...string) *Grammar {
	t.Helper()
	b := NewGrammarBuilder(t.Name())
	for _, line := range rules {
		parts := strings.SplitN(line, ":=", 2)
		if len(parts) != 2 {
			t.Fatalf("malformed test rule %q", line)
		}
		lhs := strings.TrimSpace(parts[0])
		for _, alt := range strings.Split(parts[1], "|") {
			rb := b.LHS(lhs)
			alt = strings.TrimSpace(alt)
			if alt == EpsilonName {
				rb.Epsilon()
				continue
			}
			for _, r := range alt {
				if unicode.IsUpper(r) {
					rb.N(string(r))
				} else {
					rb.T(string(r))
				}
			}
			rb.End()
		}
	}
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("cannot build test grammar: %v", err)
	}
	return g
}

func mustAlt(t *testing.T, syms ...Symbol) Alternative {
	t.Helper()
	a, err := NewAlternative(syms...)
	if err != nil {
		t.Fatal(err)
	}
	return a
}
