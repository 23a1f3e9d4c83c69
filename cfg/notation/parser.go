package notation

import (
	"fmt"

	grammars "github.com/E1izabeth/Grammars"
	"github.com/E1izabeth/Grammars/cfg"
	"golang.org/x/text/unicode/norm"
)

// SyntaxError is returned for input not conforming to the grammar notation.
type SyntaxError struct {
	Span   grammars.Span // location of the offending lexeme
	Lexeme string
	Msg    string
	Err    error // underlying cause, if any
}

func (e *SyntaxError) Error() string {
	if e.Lexeme == "" {
		return fmt.Sprintf("syntax error at %d:%d: %s", e.Span.Line, e.Span.Col, e.Msg)
	}
	return fmt.Sprintf("syntax error at %d:%d near %q: %s", e.Span.Line, e.Span.Col, e.Lexeme, e.Msg)
}

// Unwrap returns the underlying cause of e, which may be nil.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Parse reads a grammar in notation (see package documentation) from text.
// Options are handed to cfg.NewGrammar; the first rule of text defines the
// start symbol unless option cfg.WithStart is given.
//
// Parse reports the first syntax error as a *SyntaxError. An empty text
// results in a grammar without rules and without start symbol.
func Parse(text string, opts ...cfg.GrammarOption) (*cfg.Grammar, error) {
	b, err := parse(text)
	if err != nil {
		return nil, err
	}
	return b.Grammar(opts...)
}

// MustParse is like Parse, but panics on errors. It is intended for
// grammars which are part of a program.
func MustParse(text string, opts ...cfg.GrammarOption) *cfg.Grammar {
	g, err := Parse(text, opts...)
	if err != nil {
		panic(fmt.Sprintf("notation: cannot parse grammar: %v", err))
	}
	return g
}

// ParseRules reads rules in notation, without any of them marked as start
// rule. It is useful for extending an existing grammar.
func ParseRules(text string) ([]*cfg.Rule, error) {
	b, err := parse(text)
	if err != nil {
		return nil, err
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, err
	}
	rules := make([]*cfg.Rule, g.Size())
	for i, r := range g.Rules() {
		rules[i] = cfg.NewRule(r.Name(), false, r.Alternatives()...)
	}
	return rules, nil
}

func parse(text string) (*cfg.GrammarBuilder, error) {
	sc, err := newScanner(norm.NFC.String(text))
	if err != nil {
		return nil, err
	}
	p := &parser{
		sc:     sc,
		b:      cfg.NewGrammarBuilder(""),
		symtab: cfg.NewSymbolTable(),
	}
	if err := p.grammar(); err != nil {
		tracer().Infof("%v", err)
		return nil, err
	}
	return p.b, nil
}

// --- Recursive descent -----------------------------------------------------

// parser reads
//
//    grammar     ::=  { Sep } [ rule { Sep { Sep } rule } { Sep } ] EOF
//    rule        ::=  NonTerm Def alternative { Bar alternative }
//    alternative ::=  Empty | symbol { symbol }
//    symbol      ::=  NonTerm | Term
//
type parser struct {
	sc     *scanner
	tok    token // lookahead
	b      *cfg.GrammarBuilder
	symtab *cfg.SymbolTable
}

func (p *parser) advance() error {
	tok, err := p.sc.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) errorf(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Span:   p.tok.span,
		Lexeme: p.tok.lexeme,
		Msg:    fmt.Sprintf(format, args...),
	}
}

func (p *parser) expect(typ grammars.TokType) (token, error) {
	if p.tok.typ != typ {
		return p.tok, p.errorf("expected %s, found %v", tokenNames[typ], p.tok)
	}
	tok := p.tok
	return tok, p.advance()
}

func (p *parser) grammar() error {
	if err := p.advance(); err != nil {
		return err
	}
	for {
		for p.tok.typ == Sep {
			if err := p.advance(); err != nil {
				return err
			}
		}
		if p.tok.typ == EOF {
			return nil
		}
		if err := p.rule(); err != nil {
			return err
		}
		if p.tok.typ != Sep && p.tok.typ != EOF {
			return p.errorf("expected %s or %s, found %v", tokenNames[Bar], tokenNames[Sep], p.tok)
		}
	}
}

func (p *parser) rule() error {
	lhs, err := p.expect(NonTerm)
	if err != nil {
		return err
	}
	if err := p.define(cfg.N(lhs.value), lhs); err != nil {
		return err
	}
	if _, err := p.expect(Def); err != nil {
		return err
	}
	if err := p.alternative(lhs.value); err != nil {
		return err
	}
	for p.tok.typ == Bar {
		if err := p.advance(); err != nil {
			return err
		}
		if err := p.alternative(lhs.value); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) alternative(lhs string) error {
	if p.tok.typ == Empty {
		eps := p.tok
		if err := p.advance(); err != nil {
			return err
		}
		if p.tok.typ == NonTerm || p.tok.typ == Term || p.tok.typ == Empty {
			return &SyntaxError{
				Span:   eps.span,
				Lexeme: eps.lexeme,
				Msg:    "ε cannot be combined with other symbols",
				Err:    cfg.ErrMalformedAlternative,
			}
		}
		p.b.LHS(lhs).Epsilon()
		return nil
	}
	var syms []cfg.Symbol
	for p.tok.typ == NonTerm || p.tok.typ == Term {
		var sym cfg.Symbol
		if p.tok.typ == NonTerm {
			sym = cfg.N(p.tok.value)
		} else {
			if p.tok.value == "" {
				return p.errorf("empty terminal")
			}
			sym = cfg.T(p.tok.value)
		}
		if err := p.define(sym, p.tok); err != nil {
			return err
		}
		syms = append(syms, sym)
		if err := p.advance(); err != nil {
			return err
		}
	}
	if p.tok.typ == Empty {
		return &SyntaxError{
			Span:   p.tok.span,
			Lexeme: p.tok.lexeme,
			Msg:    "ε cannot be combined with other symbols",
			Err:    cfg.ErrMalformedAlternative,
		}
	}
	if len(syms) == 0 {
		return p.errorf("empty alternative for %s, use ε", lhs)
	}
	rb := p.b.LHS(lhs)
	for _, sym := range syms {
		if sym.IsNonTerminal() {
			rb.N(sym.Name())
		} else {
			rb.T(sym.Name())
		}
	}
	rb.End()
	return nil
}

// define checks that a name is not used for a terminal and a non-terminal.
func (p *parser) define(sym cfg.Symbol, at token) error {
	if _, _, err := p.symtab.ResolveOrDefine(sym); err != nil {
		return &SyntaxError{
			Span:   at.span,
			Lexeme: at.lexeme,
			Msg:    fmt.Sprintf("%s used as terminal and as non-terminal", sym.Name()),
			Err:    err,
		}
	}
	return nil
}
