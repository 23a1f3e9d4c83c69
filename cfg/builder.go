package cfg

import "fmt"

// GrammarBuilder is used to construct a grammar rule by rule. It is the
// programmatic counterpart of package notation:
//
//    b := cfg.NewGrammarBuilder("G")
//    b.LHS("S").N("A").T("a").End()     // S  ->  A a
//    b.LHS("A").T("b").End()            // A  ->  b
//    b.LHS("A").Epsilon()               // A  ->  ε
//    g, err := b.Grammar()
//
// Alternatives for the same non-terminal are collected into one rule, even if
// they are not added consecutively; duplicate alternatives are dropped. The
// first non-terminal on a left hand side is the start symbol, unless the
// grammar is created with WithStart.
type GrammarBuilder struct {
	name   string
	symtab *SymbolTable
	prods  *productions
	start  string
	err    error
}

// NewGrammarBuilder creates a builder for a grammar with the given name.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{
		name:   name,
		symtab: NewSymbolTable(),
		prods:  newProductions(),
	}
}

// RuleBuilder collects the symbols of one alternative.
type RuleBuilder struct {
	b    *GrammarBuilder
	lhs  string
	syms []Symbol
}

// LHS starts a new alternative for non-terminal name.
func (b *GrammarBuilder) LHS(name string) *RuleBuilder {
	b.define(N(name))
	if b.start == "" {
		b.start = name
	}
	b.prods.declare(name)
	return &RuleBuilder{b: b, lhs: name}
}

// N appends a non-terminal to the alternative.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.syms = append(rb.syms, rb.b.define(N(name)))
	return rb
}

// T appends a terminal to the alternative.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.syms = append(rb.syms, rb.b.define(T(name)))
	return rb
}

// End completes the alternative and adds it to the grammar.
func (rb *RuleBuilder) End() Alternative {
	alt, err := NewAlternative(rb.syms...)
	if err != nil {
		rb.b.fail(fmt.Errorf("rule %s: %w", rb.lhs, err))
		return alt
	}
	rb.b.prods.add(rb.lhs, alt)
	return alt
}

// Epsilon completes the alternative as ε. Symbols appended before are an
// error.
func (rb *RuleBuilder) Epsilon() Alternative {
	rb.syms = append(rb.syms, Epsilon())
	return rb.End()
}

func (b *GrammarBuilder) define(sym Symbol) Symbol {
	s, _, err := b.symtab.ResolveOrDefine(sym)
	if err != nil {
		b.fail(err)
		return sym
	}
	return s
}

func (b *GrammarBuilder) fail(err error) {
	tracer().Errorf("grammar %s: %v", b.name, err)
	if b.err == nil {
		b.err = err
	}
}

// Symbols returns the symbol table of the builder.
func (b *GrammarBuilder) Symbols() *SymbolTable {
	return b.symtab
}

// Grammar returns the grammar built so far, or the first error which occurred
// while adding rules.
func (b *GrammarBuilder) Grammar(opts ...GrammarOption) (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	conf := append([]GrammarOption{WithName(b.name)}, opts...)
	probe := grammarConfig{}
	for _, opt := range opts {
		opt(&probe)
	}
	if probe.start == "" && b.start != "" {
		conf = append(conf, WithStart(b.start))
	}
	return NewGrammar(b.prods.rules(), conf...)
}
