package cfg

import "fmt"

// Reachable computes the non-terminals (VN) and terminals (VT) reachable from
// the start symbol of g. For a grammar without start symbol both sets are empty.
func Reachable(g *Grammar) (VN *NameSet, VT *NameSet) {
	return reachable(g, diagnostics{})
}

func reachable(g *Grammar, diag diagnostics) (*NameSet, *NameSet) {
	VN, VT := newNameSet(), newNameSet()
	if start, ok := g.Start(); ok {
		VN.add(start.Name())
	}
	n := 0
	for working := true; working; n++ {
		diag.set(fmt.Sprintf("VN%d", n), VN)
		diag.set(fmt.Sprintf("VT%d", n), VT)
		working = false
		for _, r := range g.rules {
			if !VN.Contains(r.Name()) {
				continue
			}
			for _, a := range r.alts {
				for _, s := range a.syms {
					switch s.kind {
					case TerminalKind:
						VT.add(s.name)
					case NonTerminalKind:
						if VN.add(s.name) {
							working = true
						}
					}
				}
			}
		}
	}
	diag.set(fmt.Sprintf("VN%d", n), VN)
	diag.set(fmt.Sprintf("VT%d", n), VT)
	return VN, VT
}

// RemoveUnreachable returns a grammar equivalent to g without symbols which
// are unreachable from the start symbol. A grammar without start symbol
// results in an empty grammar.
func RemoveUnreachable(g *Grammar, opts ...Option) (*Grammar, error) {
	o := collect(opts)
	diag := g.diagnostics(o.quiet)
	diag.line("RemoveNonReachableRules()")
	if !g.hasStart {
		tracer().Infof("grammar %q has no start symbol, nothing is reachable", g.name)
	}
	VN, VT := reachable(g, diag)
	rules := make([]*Rule, 0, len(g.rules))
	for _, r := range g.rules {
		if !VN.Contains(r.Name()) {
			continue
		}
		var alts []Alternative
		for _, a := range r.alts {
			if a.nonTerminalsIn(VN) && a.terminalsIn(VT) {
				alts = append(alts, a)
			}
		}
		if len(alts) > 0 {
			rules = append(rules, r.with(alts))
		}
	}
	return g.derive(rules), nil
}
