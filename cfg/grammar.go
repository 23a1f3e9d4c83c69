package cfg

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/slices"
)

// Grammar is an ordered collection of rules, together with a start symbol
// and an optional diagnostic sink. Grammars are immutable: transformations
// always create new grammars.
//
// A grammar should define at most one rule per non-terminal. This is not
// enforced; transformations treat repeated rules for the same non-terminal
// as if their alternatives were merged.
type Grammar struct {
	name     string
	rules    []*Rule
	start    string
	hasStart bool
	log      func(string)
}

// GrammarOption configures a grammar under construction.
type GrammarOption func(*grammarConfig)

type grammarConfig struct {
	name  string
	start string
	log   func(string)
}

// WithName sets the name of a grammar.
func WithName(name string) GrammarOption {
	return func(c *grammarConfig) {
		c.name = name
	}
}

// WithStart makes non-terminal name the start symbol, independent of the
// start markers of the rules. A rule marked as start for a different
// non-terminal results in ErrAmbiguousStart.
func WithStart(name string) GrammarOption {
	return func(c *grammarConfig) {
		c.start = name
	}
}

// WithLog installs a diagnostic sink. Transformations of the grammar (and of
// grammars derived from it) will call it with one line of trace output per
// call. The sink is observational only; results do not depend on it.
func WithLog(sink func(string)) GrammarOption {
	return func(c *grammarConfig) {
		c.log = sink
	}
}

// NewGrammar creates a grammar from a list of rules.
//
// The start symbol is the one given by WithStart, or else the non-terminal
// of the rule(s) marked as start. A grammar without any start marker has no
// start symbol; this is legal, but RemoveUnreachable will reduce it to an
// empty grammar. Different non-terminals marked as start result in
// ErrAmbiguousStart.
func NewGrammar(rules []*Rule, opts ...GrammarOption) (*Grammar, error) {
	conf := grammarConfig{}
	for _, opt := range opts {
		opt(&conf)
	}
	g := &Grammar{name: conf.name, log: conf.log}
	var marked []string
	for _, r := range rules {
		if r.start && !slices.Contains(marked, r.Name()) {
			marked = append(marked, r.Name())
		}
	}
	switch {
	case len(marked) > 1:
		return nil, fmt.Errorf("%w: rules %v are all marked as start", ErrAmbiguousStart, marked)
	case conf.start != "" && len(marked) == 1 && marked[0] != conf.start:
		return nil, fmt.Errorf("%w: start %s requested, but rule %s is marked as start",
			ErrAmbiguousStart, conf.start, marked[0])
	case conf.start != "":
		g.start, g.hasStart = conf.start, true
	case len(marked) == 1:
		g.start, g.hasStart = marked[0], true
	default:
		tracer().Infof("grammar %q has no start symbol", g.name)
	}
	g.rules = g.markStart(rules)
	return g, nil
}

// derive creates a grammar with the same name, start symbol and sink as g.
func (g *Grammar) derive(rules []*Rule) *Grammar {
	d := &Grammar{
		name:     g.name,
		start:    g.start,
		hasStart: g.hasStart,
		log:      g.log,
	}
	d.rules = d.markStart(rules)
	return d
}

// markStart makes the start markers of rules agree with the start symbol of g.
func (g *Grammar) markStart(rules []*Rule) []*Rule {
	marked := make([]*Rule, len(rules))
	for i, r := range rules {
		isStart := g.hasStart && r.Name() == g.start
		if r.start == isStart {
			marked[i] = r
		} else {
			marked[i] = &Rule{lhs: r.lhs, alts: r.alts, start: isStart}
		}
	}
	return marked
}

// Name returns the name of a grammar.
func (g *Grammar) Name() string {
	return g.name
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rules returns the rules of g in order.
func (g *Grammar) Rules() []*Rule {
	return slices.Clone(g.rules)
}

// Rule returns the first rule for non-terminal name, or nil.
func (g *Grammar) Rule(name string) *Rule {
	for _, r := range g.rules {
		if r.Name() == name {
			return r
		}
	}
	return nil
}

// Defines is true if g has a rule for non-terminal name.
func (g *Grammar) Defines(name string) bool {
	return g.Rule(name) != nil
}

// lookup returns the alternatives of all rules for non-terminal name.
func (g *Grammar) lookup(name string) ([]Alternative, error) {
	var alts []Alternative
	found := false
	for _, r := range g.rules {
		if r.Name() == name {
			alts = append(alts, r.alts...)
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUndefinedNonTerminal, name)
	}
	return alts, nil
}

// Start returns the start symbol of g, if any.
func (g *Grammar) Start() (Symbol, bool) {
	if !g.hasStart {
		return Symbol{}, false
	}
	return N(g.start), true
}

// StartRule returns the rule for the start symbol, or nil.
func (g *Grammar) StartRule() *Rule {
	if !g.hasStart {
		return nil
	}
	return g.Rule(g.start)
}

// Sink returns the diagnostic sink of g, which may be nil.
func (g *Grammar) Sink() func(string) {
	return g.log
}

// NonTerminals returns the sorted names of all non-terminals defined by a rule.
func (g *Grammar) NonTerminals() []string {
	set := treeset.NewWith(utils.StringComparator)
	for _, r := range g.rules {
		set.Add(r.Name())
	}
	return stringValues(set)
}

// Terminals returns the sorted names of all terminals used in alternatives.
func (g *Grammar) Terminals() []string {
	set := treeset.NewWith(utils.StringComparator)
	for _, r := range g.rules {
		for _, a := range r.alts {
			for _, s := range a.syms {
				if s.IsTerminal() {
					set.Add(s.name)
				}
			}
		}
	}
	return stringValues(set)
}

func stringValues(set *treeset.Set) []string {
	names := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		names = append(names, v.(string))
	}
	return names
}

// Extend returns a grammar with rules added to g. Alternatives for a
// non-terminal already defined by g are appended to its rule; other rules
// are appended to the grammar. Start markers of the new rules must not
// contradict the start symbol of g.
func (g *Grammar) Extend(rules ...*Rule) (*Grammar, error) {
	P := newProductions()
	for _, r := range g.rules {
		P.declare(r.Name())
		P.append(r.Name(), r.alts...)
	}
	start := g.start
	for _, r := range rules {
		if r.start {
			if g.hasStart && r.Name() != g.start {
				return nil, fmt.Errorf("%w: cannot add start rule %s to grammar with start %s",
					ErrAmbiguousStart, r.Name(), g.start)
			}
			start = r.Name()
		}
		P.declare(r.Name())
		P.append(r.Name(), r.alts...)
	}
	opts := []GrammarOption{WithName(g.name), WithLog(g.log)}
	if start != "" {
		opts = append(opts, WithStart(start))
	}
	return NewGrammar(P.rules(), opts...)
}

// Equal compares two grammars rule by rule, in order. Names and sinks are
// not compared.
func (g *Grammar) Equal(other *Grammar) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.start == other.start && g.hasStart == other.hasStart &&
		slices.EqualFunc(g.rules, other.rules, (*Rule).Equal)
}

// String renders the rules of g, one per line.
func (g *Grammar) String() string {
	lines := make([]string, len(g.rules))
	for i, r := range g.rules {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

// Dump is a debugging helper, tracing all rules of g.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s ---------------------------", g.name)
	for i, r := range g.rules {
		marker := " "
		if r.start {
			marker = "*"
		}
		tracer().Debugf("%2d:%s %s", i, marker, r)
	}
	tracer().Debugf("-----------------------------------------")
}

// === Productions ===========================================================

// productions collects alternatives per non-terminal while a transformation
// assembles its result. Non-terminals keep the order of their declaration,
// alternatives keep the order of insertion and are free of duplicates.
type productions struct {
	m *linkedhashmap.Map // name -> *altList
}

func newProductions() *productions {
	return &productions{m: linkedhashmap.New()}
}

// declare makes sure that non-terminal name has an entry.
func (p *productions) declare(name string) *altList {
	if l, found := p.m.Get(name); found {
		return l.(*altList)
	}
	l := newAltList()
	p.m.Put(name, l)
	return l
}

// add adds alternative a for name, returning false for duplicates.
func (p *productions) add(name string, a Alternative) bool {
	return p.declare(name).add(a)
}

func (p *productions) append(name string, alts ...Alternative) {
	l := p.declare(name)
	for _, a := range alts {
		l.add(a)
	}
}

// rules creates rules for all non-terminals with at least one alternative.
func (p *productions) rules() []*Rule {
	rules := make([]*Rule, 0, p.m.Size())
	it := p.m.Iterator()
	for it.Next() {
		l := it.Value().(*altList)
		if l.len() == 0 {
			continue
		}
		rules = append(rules, &Rule{lhs: N(it.Key().(string)), alts: slices.Clone(l.alts)})
	}
	return rules
}

// String prints p like a set of rules: {A --> a|b, B --> c}.
func (p *productions) String() string {
	rules := p.rules()
	s := make([]string, len(rules))
	for i, r := range rules {
		s[i] = r.String()
	}
	return "{" + strings.Join(s, ", ") + "}"
}
