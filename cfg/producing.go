package cfg

import "fmt"

// Producing computes the set of non-terminals of g which derive at least one
// string of terminals (possibly the empty string).
func Producing(g *Grammar) *NameSet {
	return producing(g, diagnostics{})
}

// A non-terminal is producing if one of its alternatives contains
// producing non-terminals only (plus any number of terminals). We start
// with VN = ∅ and add non-terminals until a full pass over the rules adds
// nothing. Non-terminals without a rule never enter VN.
func producing(g *Grammar, diag diagnostics) *NameSet {
	VN := newNameSet()
	n := 0
	for working := true; working; n++ {
		diag.set(fmt.Sprintf("VN%d", n), VN)
		working = false
		for _, r := range g.rules {
			if VN.Contains(r.Name()) {
				continue
			}
			for _, a := range r.alts {
				if a.nonTerminalsIn(VN) {
					VN.add(r.Name())
					working = true
					break
				}
			}
		}
	}
	diag.set(fmt.Sprintf("VN%d", n), VN)
	return VN
}

// RemoveNonProducing returns a grammar equivalent to g without non-producing
// non-terminals. Alternatives referencing a non-producing non-terminal are
// dropped, as are rules left without alternatives.
func RemoveNonProducing(g *Grammar, opts ...Option) (*Grammar, error) {
	o := collect(opts)
	diag := g.diagnostics(o.quiet)
	diag.line("RemoveNonProducingRules()")
	VN := producing(g, diag)
	rules := make([]*Rule, 0, len(g.rules))
	for _, r := range g.rules {
		if !VN.Contains(r.Name()) {
			continue
		}
		var alts []Alternative
		for _, a := range r.alts {
			if a.nonTerminalsIn(VN) {
				alts = append(alts, a)
			}
		}
		if len(alts) > 0 {
			rules = append(rules, r.with(alts))
		}
	}
	return g.derive(rules), nil
}
