package cfg

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
)

// ChainClosure computes Chain(A), the set of non-terminals derivable from A
// by chain productions only, A included. The flag is true if at least one
// chain production has been followed.
//
// Chain productions to non-terminals without a rule are not followed.
func ChainClosure(g *Grammar, A string) (*NameSet, bool) {
	return chainClosure(g, A)
}

//     Chain(A) = {A}
//     New = {A}
//     while New ≠ ∅
//         for B in New, for B → C in P
//             add C to Chain(A)
//         New = newly added symbols
func chainClosure(g *Grammar, A string) (*NameSet, bool) {
	chain := newNameSet(A)
	found := false
	frontier := arraylist.New()
	frontier.Add(A)
	for !frontier.Empty() {
		next := arraylist.New()
		it := frontier.Iterator()
		for it.Next() {
			B := it.Value().(string)
			for _, r := range g.rules {
				if r.Name() != B {
					continue
				}
				for _, a := range r.alts {
					if !a.IsChaining() {
						continue
					}
					found = true
					C := a.syms[0].name
					if !g.Defines(C) {
						tracer().Debugf("chain %s → %s: %s is undefined", B, C, C)
						continue
					}
					if chain.add(C) {
						next.Add(C)
					}
				}
			}
		}
		frontier = next
	}
	return chain, found
}

// RemoveChains returns a grammar equivalent to g without chain productions
// A → B.
//
// Chain productions are replaced by the non-chain alternatives of every
// non-terminal in the chain closure. RemoveChains operates on the ε-free
// version of g: it applies RemoveEpsilons (without S → ε) first, thus the
// result never contains ε-productions other than S → ε. S → ε is added if
// the start rule of g has an ε alternative, unless option NoStartEpsilon is
// given.
//
// ErrUndefinedNonTerminal signals an inconsistency between closure and rules.
func RemoveChains(g *Grammar, opts ...Option) (*Grammar, error) {
	o := collect(opts)
	diag := g.diagnostics(o.quiet)
	diag.line("RemoveChainingRules()")
	weps, err := RemoveEpsilons(g, NoStartEpsilon(), Quiet())
	if err != nil {
		return nil, err
	}
	P := newProductions()
	for _, r := range weps.rules {
		P.declare(r.Name())
		for _, a := range r.alts {
			if !a.IsChaining() {
				P.add(r.Name(), a)
			}
		}
	}
	diag.set("P'", P)
	for _, r := range weps.rules {
		A := r.Name()
		chain, ok := chainClosure(weps, A)
		if !ok {
			diag.line("\tskip " + A)
			diag.set("P'", P)
			continue
		}
		diag.set(fmt.Sprintf("Chain(%s)", A), chain)
		for _, B := range chain.Names() {
			alts, err := weps.lookup(B)
			if err != nil {
				return nil, fmt.Errorf("chain closure of %s: %w", A, err)
			}
			for _, a := range alts {
				if !a.IsChaining() && P.add(A, a) {
					diag.linef("\tadd %s --> %s", A, a)
				}
			}
		}
		diag.set("P'", P)
	}
	if !o.noStartEpsilon {
		if s := g.StartRule(); s != nil && hasEpsilon(g, s.Name()) {
			P.add(s.Name(), EmptyAlternative())
		}
	}
	return g.derive(P.rules()), nil
}

// hasEpsilon checks if any rule of g for name has an ε alternative.
func hasEpsilon(g *Grammar, name string) bool {
	alts, _ := g.lookup(name)
	for _, a := range alts {
		if a.IsNullable() {
			return true
		}
	}
	return false
}
