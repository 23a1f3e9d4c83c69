package cfg

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"golang.org/x/exp/slices"
)

// Alternative is one right hand side of a rule, i.e. an ordered sequence of
// symbols. Alternatives are immutable. The empty string is represented as
// an alternative consisting of ε only; ε never occurs together with other
// symbols. The zero value is not a valid alternative.
type Alternative struct {
	syms []Symbol
}

// NewAlternative creates an alternative from a sequence of symbols.
// It returns ErrMalformedAlternative for an empty sequence and for
// sequences mixing ε with other symbols.
func NewAlternative(syms ...Symbol) (Alternative, error) {
	if len(syms) == 0 {
		return Alternative{}, fmt.Errorf("%w: no symbols", ErrMalformedAlternative)
	}
	if len(syms) > 1 {
		for _, s := range syms {
			if s.IsEmpty() {
				return Alternative{}, fmt.Errorf("%w: ε mixed with other symbols", ErrMalformedAlternative)
			}
		}
	}
	return Alternative{syms: slices.Clone(syms)}, nil
}

// EmptyAlternative returns the alternative for the empty string.
func EmptyAlternative() Alternative {
	return Alternative{syms: []Symbol{Epsilon()}}
}

// IsNullable is true if a is exactly the empty string ε.
func (a Alternative) IsNullable() bool {
	return len(a.syms) == 1 && a.syms[0].IsEmpty()
}

// IsChaining is true if a consists of a single non-terminal.
func (a Alternative) IsChaining() bool {
	return len(a.syms) == 1 && a.syms[0].IsNonTerminal()
}

// Len returns the number of symbols of a. ε counts as one symbol.
func (a Alternative) Len() int {
	return len(a.syms)
}

// Symbol returns the symbol at position i.
func (a Alternative) Symbol(i int) Symbol {
	return a.syms[i]
}

// Symbols returns a copy of the symbols of a.
func (a Alternative) Symbols() []Symbol {
	return slices.Clone(a.syms)
}

// Equal compares two alternatives symbol by symbol, kind and name.
func (a Alternative) Equal(other Alternative) bool {
	return slices.Equal(a.syms, other.syms)
}

// nonTerminalsIn is true if every non-terminal of a is contained in set.
// Terminals and ε impose no constraint.
func (a Alternative) nonTerminalsIn(set *NameSet) bool {
	for _, s := range a.syms {
		if s.IsNonTerminal() && !set.Contains(s.name) {
			return false
		}
	}
	return true
}

// terminalsIn is true if every terminal of a is contained in set.
func (a Alternative) terminalsIn(set *NameSet) bool {
	for _, s := range a.syms {
		if s.IsTerminal() && !set.Contains(s.name) {
			return false
		}
	}
	return true
}

// onlyNonTerminalsIn is true if a consists of non-terminals from set only.
func (a Alternative) onlyNonTerminalsIn(set *NameSet) bool {
	for _, s := range a.syms {
		if !s.IsNonTerminal() || !set.Contains(s.name) {
			return false
		}
	}
	return true
}

// --- Hashing ---------------------------------------------------------------

type symbolSignature struct {
	Kind int
	Name string
}

type alternativeSignature struct {
	Symbols []symbolSignature
}

// Hash returns a structural hash of a. Two alternatives with equal symbol
// sequences have equal hashes. The hash is derived from (kind, name) pairs,
// not from the display string: terminals a, b and a terminal ab hash differently.
func (a Alternative) Hash() string {
	sig := alternativeSignature{Symbols: make([]symbolSignature, len(a.syms))}
	for i, s := range a.syms {
		sig.Symbols[i] = symbolSignature{Kind: int(s.kind), Name: s.name}
	}
	return fmt.Sprintf("%x", structhash.Sha1(sig, 1))
}

// String concatenates the names of the symbols of a.
func (a Alternative) String() string {
	var b strings.Builder
	for _, s := range a.syms {
		b.WriteString(s.name)
	}
	return b.String()
}

// --- Alternative lists -----------------------------------------------------

// altList is an insertion-ordered list of alternatives without duplicates.
type altList struct {
	alts []Alternative
	seen map[string]struct{}
}

func newAltList() *altList {
	return &altList{seen: map[string]struct{}{}}
}

// add appends a to the list, if not already present. Returns true if a has
// been appended.
func (l *altList) add(a Alternative) bool {
	h := a.Hash()
	if _, ok := l.seen[h]; ok {
		return false
	}
	l.seen[h] = struct{}{}
	l.alts = append(l.alts, a)
	return true
}

func (l *altList) len() int {
	return len(l.alts)
}
