package cfg

import "fmt"

// Nullable computes the set of non-terminals of g which derive ε.
func Nullable(g *Grammar) *NameSet {
	return nullable(g, diagnostics{})
}

// A non-terminal is nullable if it has an alternative ε, or an alternative
// consisting of nullable non-terminals only.
func nullable(g *Grammar, diag diagnostics) *NameSet {
	nulls := newNameSet()
	n := 0
	for working := true; working; n++ {
		diag.set(fmt.Sprintf("Nullable%d", n), nulls)
		working = false
		for _, r := range g.rules {
			if nulls.Contains(r.Name()) {
				continue
			}
			for _, a := range r.alts {
				if a.IsNullable() || a.onlyNonTerminalsIn(nulls) {
					nulls.add(r.Name())
					working = true
					break
				}
			}
		}
	}
	diag.set(fmt.Sprintf("Nullable%d", n), nulls)
	return nulls
}

// RemoveEpsilons returns a grammar equivalent to g without ε-productions.
//
// Every alternative containing k nullable non-terminals is replaced by up to
// 2^k alternatives, one for each choice of keeping or dropping the nullable
// symbols. Choices dropping every symbol are discarded. If the start symbol S
// is nullable, S → ε is added to the result, unless option NoStartEpsilon
// is given.
func RemoveEpsilons(g *Grammar, opts ...Option) (*Grammar, error) {
	o := collect(opts)
	diag := g.diagnostics(o.quiet)
	diag.line("RemoveEpsilonRules()")
	nulls := nullable(g, diag)
	P := newProductions()
	for _, r := range g.rules {
		P.declare(r.Name())
		for _, a := range r.alts {
			if a.IsNullable() {
				continue
			}
			variants, err := expandNullables(a, nulls)
			if err != nil {
				tracer().Errorf("cannot expand %s --> %s: %v", r.Name(), a, err)
				return nil, fmt.Errorf("rule %s: %w", r.Name(), err)
			}
			for _, x := range variants {
				P.add(r.Name(), x)
			}
		}
	}
	if !o.noStartEpsilon {
		if start, ok := g.Start(); ok && nulls.Contains(start.Name()) {
			P.add(start.Name(), EmptyAlternative())
		}
	}
	diag.set("P'", P)
	return g.derive(P.rules()), nil
}

// MaxNullableOccurrences limits the number of nullable non-terminals in a
// single alternative. Expansion creates 2^k variants for k occurrences.
const MaxNullableOccurrences = 20

// expandNullables creates all variants of a with the nullable non-terminals
// either kept or dropped. Variant no. bits keeps the j-th nullable
// occurrence if bit j is set. The variant dropping every symbol is omitted.
func expandNullables(a Alternative, nulls *NameSet) ([]Alternative, error) {
	var positions []int
	for i, s := range a.syms {
		if s.IsNonTerminal() && nulls.Contains(s.name) {
			positions = append(positions, i)
		}
	}
	k := len(positions)
	if k > MaxNullableOccurrences {
		return nil, fmt.Errorf("%d > %d: %w", k, MaxNullableOccurrences, ErrTooManyNullables)
	}
	variants := make([]Alternative, 0, 1<<k)
	for bits := 0; bits < 1<<k; bits++ {
		syms := make([]Symbol, 0, len(a.syms))
		j := 0
		for i, s := range a.syms {
			if j < k && positions[j] == i {
				keep := bits&(1<<j) != 0
				j++
				if !keep {
					continue
				}
			}
			syms = append(syms, s)
		}
		if len(syms) > 0 {
			variants = append(variants, Alternative{syms: syms})
		}
	}
	return variants, nil
}
