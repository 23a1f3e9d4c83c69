package cfg

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Rule is a non-terminal together with its alternatives, i.e. all the
// productions with the same left hand side. Rules are immutable.
type Rule struct {
	lhs   Symbol
	alts  []Alternative
	start bool
}

// NewRule creates a rule for non-terminal name. isStart marks the rule's
// non-terminal as the start symbol of a grammar.
func NewRule(name string, isStart bool, alts ...Alternative) *Rule {
	return &Rule{
		lhs:   N(name),
		alts:  slices.Clone(alts),
		start: isStart,
	}
}

// LHS returns the non-terminal of r.
func (r *Rule) LHS() Symbol {
	return r.lhs
}

// Name returns the name of the non-terminal of r.
func (r *Rule) Name() string {
	return r.lhs.name
}

// IsStart is true if r defines the start symbol.
func (r *Rule) IsStart() bool {
	return r.start
}

// Len returns the number of alternatives.
func (r *Rule) Len() int {
	return len(r.alts)
}

// Alternative returns alternative no. i.
func (r *Rule) Alternative(i int) Alternative {
	return r.alts[i]
}

// Alternatives returns a copy of the alternatives of r.
func (r *Rule) Alternatives() []Alternative {
	return slices.Clone(r.alts)
}

// Equal compares two rules by non-terminal, start marker and alternatives,
// including the order of alternatives.
func (r *Rule) Equal(other *Rule) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.lhs == other.lhs && r.start == other.start &&
		slices.EqualFunc(r.alts, other.alts, Alternative.Equal)
}

// with returns a copy of r with alternatives replaced.
func (r *Rule) with(alts []Alternative) *Rule {
	return &Rule{lhs: r.lhs, alts: alts, start: r.start}
}

// String renders r as "A --> alt1|alt2".
func (r *Rule) String() string {
	var b strings.Builder
	b.WriteString(r.lhs.name)
	b.WriteString(" --> ")
	for i, a := range r.alts {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a.String())
	}
	return b.String()
}
