package cfg

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammars.cfg")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").T("a").End() // S  ->  A a
	b.LHS("A").N("B").N("D").End() // A  ->  B D
	b.LHS("B").T("b").End()        // B  ->  b
	b.LHS("B").Epsilon()           // B  ->  ε
	b.LHS("D").T("d").End()        // D  ->  d
	b.LHS("D").Epsilon()           // D  ->  ε
	b.LHS("A").T("x").End()        // A  ->  x
	g, err := b.Grammar()
	require.NoError(t, err)
	g.Dump()
	assert := assert.New(t)
	assert.Equal("G", g.Name())
	assert.Equal("S --> Aa\nA --> BD|x\nB --> b|ε\nD --> d|ε", g.String())
	start, ok := g.Start()
	assert.True(ok)
	assert.Equal(N("S"), start)
	assert.True(g.Rule("S").IsStart())
	assert.False(g.Rule("A").IsStart())
	assert.Equal([]string{"A", "B", "D", "S"}, g.NonTerminals())
	assert.Equal([]string{"a", "b", "d", "x"}, g.Terminals())
	assert.Equal(8, b.Symbols().Size())
}

func TestBuilderErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammars.cfg")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").End()
	b.LHS("S").T("A").End()
	_, err := b.Grammar()
	assert.ErrorIs(t, err, ErrSymbolKindClash)
	//
	b = NewGrammarBuilder("G")
	b.LHS("S").T("a").Epsilon()
	_, err = b.Grammar()
	assert.ErrorIs(t, err, ErrMalformedAlternative)
}

func TestStartResolution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammars.cfg")
	defer teardown()
	//
	a := mustAlt(t, T("a"))
	testCases := []struct {
		name      string
		rules     []*Rule
		opts      []GrammarOption
		expect    string
		hasStart  bool
		expectErr error
	}{
		{
			name:     "marked rule",
			rules:    []*Rule{NewRule("S", true, a), NewRule("A", false, a)},
			expect:   "S",
			hasStart: true,
		},
		{
			name:  "no marker",
			rules: []*Rule{NewRule("S", false, a)},
		},
		{
			name:     "explicit start",
			rules:    []*Rule{NewRule("S", false, a), NewRule("A", false, a)},
			opts:     []GrammarOption{WithStart("A")},
			expect:   "A",
			hasStart: true,
		},
		{
			name:     "explicit start agrees with marker",
			rules:    []*Rule{NewRule("S", true, a)},
			opts:     []GrammarOption{WithStart("S")},
			expect:   "S",
			hasStart: true,
		},
		{
			name:      "explicit start contradicts marker",
			rules:     []*Rule{NewRule("S", true, a), NewRule("A", false, a)},
			opts:      []GrammarOption{WithStart("A")},
			expectErr: ErrAmbiguousStart,
		},
		{
			name:      "two markers",
			rules:     []*Rule{NewRule("S", true, a), NewRule("A", true, a)},
			expectErr: ErrAmbiguousStart,
		},
		{
			name:     "repeated rule marked twice",
			rules:    []*Rule{NewRule("S", true, a), NewRule("S", true, a)},
			expect:   "S",
			hasStart: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			g, err := NewGrammar(tc.rules, tc.opts...)
			if tc.expectErr != nil {
				assert.ErrorIs(err, tc.expectErr)
				return
			}
			if !assert.NoError(err) {
				return
			}
			start, ok := g.Start()
			assert.Equal(tc.hasStart, ok)
			if tc.hasStart {
				assert.Equal(tc.expect, start.Name())
				for _, r := range g.Rules() {
					assert.Equal(r.Name() == tc.expect, r.IsStart(), "start marker of %s", r.Name())
				}
			}
		})
	}
}

func TestExtend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammars.cfg")
	defer teardown()
	//
	g := grammarFrom(t, "S := aA", "A := b")
	h, err := g.Extend(NewRule("A", false, mustAlt(t, T("c"))), NewRule("B", false, mustAlt(t, T("d"))))
	require.NoError(t, err)
	assert.Equal(t, "S --> aA\nA --> b|c\nB --> d", h.String())
	assert.Equal(t, "S --> aA\nA --> b", g.String(), "original grammar must be unchanged")
	_, err = g.Extend(NewRule("B", true, mustAlt(t, T("d"))))
	assert.ErrorIs(t, err, ErrAmbiguousStart)
}

func TestGrammarEqual(t *testing.T) {
	g1 := grammarFrom(t, "S := aA | b", "A := c")
	g2 := grammarFrom(t, "S := aA | b", "A := c")
	g3 := grammarFrom(t, "S := b | aA", "A := c")
	assert.True(t, g1.Equal(g2))
	assert.False(t, g1.Equal(g3), "order of alternatives matters")
}

func TestSymbolTable(t *testing.T) {
	symtab := NewSymbolTable()
	_, found, err := symtab.ResolveOrDefine(N("A"))
	assert.NoError(t, err)
	assert.False(t, found)
	_, found, err = symtab.ResolveOrDefine(N("A"))
	assert.NoError(t, err)
	assert.True(t, found)
	_, _, err = symtab.ResolveOrDefine(T("A"))
	assert.ErrorIs(t, err, ErrSymbolKindClash)
	_, _, err = symtab.ResolveOrDefine(Epsilon())
	assert.NoError(t, err)
	assert.Equal(t, 1, symtab.Size())
	sym, ok := symtab.Resolve("A")
	assert.True(t, ok)
	assert.Equal(t, N("A"), sym)
}
