package notation

import (
	"strings"
	"unicode/utf8"

	"github.com/E1izabeth/Grammars/cfg"
	"golang.org/x/exp/slices"
)

// Format writes g in notation, one rule per line. Parsing the result yields
// a grammar equal to g, provided the start rule of g is its first rule.
func Format(g *cfg.Grammar) string {
	var b strings.Builder
	for i, r := range g.Rules() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(nonTerminal(r.Name()))
		b.WriteString(" := ")
		for j, a := range r.Alternatives() {
			if j > 0 {
				b.WriteString(" | ")
			}
			for k, s := range a.Symbols() {
				if k > 0 && !isSingle(s) {
					b.WriteByte(' ')
				}
				switch {
				case s.IsEmpty():
					b.WriteString(cfg.EpsilonName)
				case s.IsNonTerminal():
					b.WriteString(nonTerminal(s.Name()))
				default:
					b.WriteString(terminal(s.Name()))
				}
			}
		}
	}
	return b.String()
}

// isSingle is true for symbols written as a single character.
func isSingle(s cfg.Symbol) bool {
	r, size := utf8.DecodeRuneInString(s.Name())
	if size != len(s.Name()) {
		return false
	}
	if s.IsNonTerminal() {
		return r >= 'A' && r <= 'Z'
	}
	return r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || slices.Contains(literals, s.Name())
}

func nonTerminal(name string) string {
	if isSingle(cfg.N(name)) {
		return name
	}
	return "<" + name + ">"
}

func terminal(name string) string {
	if isSingle(cfg.T(name)) {
		return name
	}
	if strings.ContainsRune(name, '\'') {
		return `"` + name + `"`
	}
	return "'" + name + "'"
}
