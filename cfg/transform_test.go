package cfg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var task1 = []string{
	"S := aC | bA",
	"A := cAB",
	"B := aC",
	"C := bA | d",
}

var task2 = []string{
	"S := ABC | aBC",
	"A := aA | BC",
	"B := bB | ε",
	"C := cC | ε",
}

var task3 = []string{
	"S := Aa | B",
	"A := a | bc | B",
	"B := A | bb",
}

var task4 = []string{
	"I := T | I+T | I-T",
	"T := M | T*M | T/M",
	"M := (I) | K",
	"K := a | b | c",
}

// --- Producing symbols -----------------------------------------------------

func TestRemoveNonProducing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammars.cfg")
	defer teardown()
	//
	testCases := []struct {
		name   string
		rules  []string
		expect string
	}{
		{
			name:   "task 1",
			rules:  task1,
			expect: "S --> aC\nB --> aC\nC --> d",
		},
		{
			name:   "everything producing",
			rules:  task3,
			expect: "S --> Aa|B\nA --> a|bc|B\nB --> A|bb",
		},
		{
			name:   "nothing producing",
			rules:  []string{"S := aS | A", "A := bA"},
			expect: "",
		},
		{
			name:   "epsilon is producing",
			rules:  []string{"S := AB", "A := ε", "B := b"},
			expect: "S --> AB\nA --> ε\nB --> b",
		},
		{
			name:   "undefined non-terminal",
			rules:  []string{"S := aX | b"},
			expect: "S --> b",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := grammarFrom(t, tc.rules...)
			actual, err := RemoveNonProducing(g)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, actual.String())
		})
	}
}

func TestNonProducingTrace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammars.cfg")
	defer teardown()
	//
	var lines []string
	g := grammarFrom(t, task1...)
	g, err := NewGrammar(g.Rules(), WithLog(func(line string) { lines = append(lines, line) }))
	require.NoError(t, err)
	_, err = RemoveNonProducing(g)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"RemoveNonProducingRules()",
		"\tVN0 = {}",
		"\tVN1 = {C}",
		"\tVN2 = {C, S, B}",
		"\tVN3 = {C, S, B}",
	}, lines)
	lines = nil
	_, err = RemoveNonProducing(g, Quiet())
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestNonProducingProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammars.cfg")
	defer teardown()
	//
	for _, rules := range [][]string{task1, task2, task3, task4, {"S := A | b", "A := aA"}} {
		g := grammarFrom(t, rules...)
		once, err := RemoveNonProducing(g)
		require.NoError(t, err)
		twice, err := RemoveNonProducing(once)
		require.NoError(t, err)
		assert.True(t, once.Equal(twice), "not idempotent:\n%s\n---\n%s", once, twice)
		defined := newNameSet(once.NonTerminals()...)
		for _, r := range once.Rules() {
			ok := false
			for _, a := range r.Alternatives() {
				ok = ok || a.nonTerminalsIn(defined)
			}
			assert.True(t, ok, "rule %s has no alternative over remaining non-terminals", r)
		}
	}
}

// --- Reachable symbols -----------------------------------------------------

func TestRemoveUnreachable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammars.cfg")
	defer teardown()
	//
	testCases := []struct {
		name   string
		rules  []string
		expect string
	}{
		{
			name:   "everything reachable",
			rules:  task1,
			expect: "S --> aC|bA\nA --> cAB\nB --> aC\nC --> bA|d",
		},
		{
			name:   "unreachable tail",
			rules:  []string{"S := aA", "A := b", "B := c", "C := B"},
			expect: "S --> aA\nA --> b",
		},
		{
			name:   "reachable only through a later rule",
			rules:  []string{"S := C", "A := a", "B := A", "C := B"},
			expect: "S --> C\nA --> a\nB --> A\nC --> B",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := grammarFrom(t, tc.rules...)
			actual, err := RemoveUnreachable(g)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, actual.String())
		})
	}
}

func TestUnreachableWithoutStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammars.cfg")
	defer teardown()
	//
	g, err := NewGrammar(grammarFrom(t, task1...).Rules()[1:])
	require.NoError(t, err)
	_, ok := g.Start()
	require.False(t, ok)
	actual, err := RemoveUnreachable(g)
	require.NoError(t, err)
	assert.Equal(t, 0, actual.Size())
}

func TestUnreachableProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammars.cfg")
	defer teardown()
	//
	for _, rules := range [][]string{task1, task2, task3, task4, {"S := a", "A := S"}} {
		g := grammarFrom(t, rules...)
		once, err := RemoveUnreachable(g)
		require.NoError(t, err)
		twice, err := RemoveUnreachable(once)
		require.NoError(t, err)
		assert.True(t, once.Equal(twice), "not idempotent:\n%s\n---\n%s", once, twice)
		VN, _ := Reachable(once)
		for _, A := range once.NonTerminals() {
			assert.True(t, VN.Contains(A), "%s not reachable in result", A)
		}
	}
}

func TestPipelineOrderSensitivity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammars.cfg")
	defer teardown()
	//
	g := grammarFrom(t, task1...)
	producing, err := RemoveNonProducing(g)
	require.NoError(t, err)
	reachable, err := RemoveUnreachable(g)
	require.NoError(t, err)
	both, err := RemoveUnreachable(producing)
	require.NoError(t, err)
	assert.Equal(t, "S --> aC\nC --> d", both.String())
	assert.Equal(t, []string{"C", "S"}, both.NonTerminals())
	assert.Equal(t, []string{"B", "C", "S"}, producing.NonTerminals())
	assert.Equal(t, []string{"A", "B", "C", "S"}, reachable.NonTerminals())
}

// --- ε-productions ---------------------------------------------------------

func TestNullable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammars.cfg")
	defer teardown()
	//
	nulls := Nullable(grammarFrom(t, task2...))
	assert.Equal(t, []string{"B", "C", "A", "S"}, nulls.Names())
	assert.True(t, nulls.Contains("A"), "A → BC with B, C nullable")
	nulls = Nullable(grammarFrom(t, task1...))
	assert.Equal(t, 0, nulls.Len())
}

func TestRemoveEpsilons(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammars.cfg")
	defer teardown()
	//
	testCases := []struct {
		name   string
		rules  []string
		opts   []Option
		expect string
	}{
		{
			name:  "task 2",
			rules: task2,
			expect: "S --> A|B|AB|C|AC|BC|ABC|a|aB|aC|aBC|ε\n" +
				"A --> a|aA|B|C|BC\n" +
				"B --> b|bB\n" +
				"C --> c|cC",
		},
		{
			name:  "task 2 without S → ε",
			rules: task2,
			opts:  []Option{NoStartEpsilon()},
			expect: "S --> A|B|AB|C|AC|BC|ABC|a|aB|aC|aBC\n" +
				"A --> a|aA|B|C|BC\n" +
				"B --> b|bB\n" +
				"C --> c|cC",
		},
		{
			name:   "start not nullable",
			rules:  []string{"S := aA", "A := b | ε"},
			expect: "S --> a|aA\nA --> b",
		},
		{
			name:   "start is ε only",
			rules:  []string{"S := ε"},
			expect: "S --> ε",
		},
		{
			name:   "duplicate alternatives after expansion",
			rules:  []string{"S := AA | aA", "A := a | ε"},
			expect: "S --> A|AA|a|aA|ε\nA --> a",
		},
		{
			name:   "nullable non-terminal without other alternatives vanishes",
			rules:  []string{"S := aE", "E := ε"},
			expect: "S --> a|aE",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := grammarFrom(t, tc.rules...)
			actual, err := RemoveEpsilons(g, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, actual.String())
		})
	}
}

func TestEpsilonPostCondition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammars.cfg")
	defer teardown()
	//
	for _, rules := range [][]string{task1, task2, task3, {"S := AB", "A := a | ε", "B := ε | b"}} {
		g := grammarFrom(t, rules...)
		start, _ := g.Start()
		startNullable := Nullable(g).Contains(start.Name())
		actual, err := RemoveEpsilons(g)
		require.NoError(t, err)
		startEpsilon := false
		for _, r := range actual.Rules() {
			for _, a := range r.Alternatives() {
				if !a.IsNullable() {
					continue
				}
				assert.Equal(t, start.Name(), r.Name(), "ε-production for %s", r.Name())
				startEpsilon = true
			}
		}
		assert.Equal(t, startNullable, startEpsilon, "S → ε present iff S nullable, for\n%s", g)
	}
}

func TestEpsilonExpansionLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammars.cfg")
	defer teardown()
	//
	wide := func(k int) *Grammar {
		return grammarFrom(t, "S := "+strings.Repeat("A", k)+" | a", "A := a | ε")
	}
	g, err := RemoveEpsilons(wide(MaxNullableOccurrences + 43))
	assert.ErrorIs(t, err, ErrTooManyNullables)
	assert.Nil(t, g)
	_, err = RemoveChains(wide(MaxNullableOccurrences + 1))
	assert.ErrorIs(t, err, ErrTooManyNullables)
	g, err = RemoveEpsilons(wide(3))
	require.NoError(t, err)
	assert.Equal(t, "S --> A|AA|AAA|a|ε\nA --> a", g.String())
}

// --- Chain productions -----------------------------------------------------

func TestChainClosure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammars.cfg")
	defer teardown()
	//
	g := grammarFrom(t, task3...)
	chain, ok := ChainClosure(g, "S")
	assert.True(t, ok)
	assert.Equal(t, []string{"S", "B", "A"}, chain.Names())
	chain, ok = ChainClosure(grammarFrom(t, "S := aS | b"), "S")
	assert.False(t, ok)
	assert.Equal(t, []string{"S"}, chain.Names())
	chain, ok = ChainClosure(grammarFrom(t, "S := X | b"), "S")
	assert.True(t, ok, "chain production to undefined X has been followed")
	assert.Equal(t, []string{"S"}, chain.Names())
}

func TestRemoveChains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammars.cfg")
	defer teardown()
	//
	testCases := []struct {
		name   string
		rules  []string
		opts   []Option
		expect string
	}{
		{
			name:   "task 3",
			rules:  task3,
			expect: "S --> Aa|bb|a|bc\nA --> a|bc|bb\nB --> bb|a|bc",
		},
		{
			name:  "task 4",
			rules: task4,
			expect: "I --> I+T|I-T|T*M|T/M|(I)|a|b|c\n" +
				"T --> T*M|T/M|(I)|a|b|c\n" +
				"M --> (I)|a|b|c\n" +
				"K --> a|b|c",
		},
		{
			name:   "chain to nullable start, epsilon removed first",
			rules:  []string{"S := N | QNnqQ", "N := nqN | n", "Q := qQ | ε"},
			expect: "S --> Nnq|QNnq|NnqQ|QNnqQ|nqN|n\nN --> nqN|n\nQ --> q|qQ",
		},
		{
			name:   "start with ε alternative",
			rules:  []string{"S := aS | B | ε", "B := b"},
			expect: "S --> a|aS|b|ε\nB --> b",
		},
		{
			name:   "start with ε alternative, suppressed",
			rules:  []string{"S := aS | B | ε", "B := b"},
			opts:   []Option{NoStartEpsilon()},
			expect: "S --> a|aS|b\nB --> b",
		},
		{
			name:   "cycle",
			rules:  []string{"A := B | a", "B := A | b"},
			expect: "A --> a|b\nB --> b|a",
		},
		{
			name:   "self chain",
			rules:  []string{"A := A | a"},
			expect: "A --> a",
		},
		{
			name:   "chain only rule keeps its position",
			rules:  []string{"S := XY", "X := a", "Y := Z | b", "Z := M", "M := N", "N := a"},
			expect: "S --> XY\nX --> a\nY --> b|a\nZ --> a\nM --> a\nN --> a",
		},
		{
			name:   "undefined non-terminal",
			rules:  []string{"S := A | b"},
			expect: "S --> b",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := grammarFrom(t, tc.rules...)
			actual, err := RemoveChains(g, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, actual.String())
			for _, r := range actual.Rules() {
				for _, a := range r.Alternatives() {
					assert.False(t, a.IsChaining(), "chain production %s --> %s left", r.Name(), a)
				}
			}
		})
	}
}

func TestChainTrace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammars.cfg")
	defer teardown()
	//
	var lines []string
	g, err := NewGrammar(grammarFrom(t, task3...).Rules(),
		WithLog(func(line string) { lines = append(lines, line) }))
	require.NoError(t, err)
	_, err = RemoveChains(g)
	require.NoError(t, err)
	require.NotEmpty(t, lines)
	assert.Equal(t, "RemoveChainingRules()", lines[0])
	assert.Equal(t, "\tP' = {S --> Aa, A --> a|bc, B --> bb}", lines[1])
	assert.Contains(t, lines, "\tChain(S) = {S, B, A}")
	assert.Contains(t, lines, "\tadd S --> bb")
	assert.NotContains(t, lines, "RemoveEpsilonRules()", "ε-removal step must be quiet")
}

func TestUndefinedLookup(t *testing.T) {
	g := grammarFrom(t, task3...)
	_, err := g.lookup("X")
	assert.ErrorIs(t, err, ErrUndefinedNonTerminal)
	alts, err := g.lookup("B")
	assert.NoError(t, err)
	assert.Len(t, alts, 2)
}

// --- Pipelines -------------------------------------------------------------

func TestSinkDoesNotChangeResults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammars.cfg")
	defer teardown()
	//
	for _, rules := range [][]string{task1, task2, task3, task4} {
		plain := grammarFrom(t, rules...)
		count := 0
		logged, err := NewGrammar(plain.Rules(), WithLog(func(string) { count++ }))
		require.NoError(t, err)
		s1, err := Pipeline(plain, DefaultPipeline)
		require.NoError(t, err)
		s2, err := Pipeline(logged, DefaultPipeline)
		require.NoError(t, err)
		require.Len(t, s2, len(s1))
		for i := range s1 {
			assert.True(t, s1[i].Grammar.Equal(s2[i].Grammar), "step %s differs", s1[i].Step)
		}
		assert.Greater(t, count, 0)
	}
}

func TestPipeline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammars.cfg")
	defer teardown()
	//
	g := grammarFrom(t, task1...)
	stages, err := Pipeline(g, []string{StepProducing, StepReachable})
	require.NoError(t, err)
	require.Len(t, stages, 2)
	assert.Equal(t, StepReachable, stages[1].Step)
	assert.Equal(t, "S --> aC\nC --> d", stages[1].Grammar.String())
	_, err = Pipeline(g, []string{StepProducing, "factor"})
	assert.ErrorIs(t, err, ErrUnknownTransformation)
	_, err = TransformationByName(StepChain)
	assert.NoError(t, err)
}

func TestDuplicateRulesDegradeGracefully(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammars.cfg")
	defer teardown()
	//
	g, err := NewGrammar([]*Rule{
		NewRule("S", true, mustAlt(t, T("a"), N("A"))),
		NewRule("A", false, mustAlt(t, T("b"))),
		NewRule("S", true, EmptyAlternative()),
		NewRule("A", false, mustAlt(t, N("S"))),
	})
	require.NoError(t, err)
	stages, err := Pipeline(g, DefaultPipeline)
	require.NoError(t, err)
	assert.Equal(t, "S --> a|aA|ε\nA --> b|a|aA", stages[len(stages)-1].Grammar.String())
}

func TestTraceKeepsGrammarText(t *testing.T) {
	var buf bytes.Buffer
	tr := gologadapter.New()
	tr.SetOutput(&buf)
	tr.SetTraceLevel(tracing.LevelDebug)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return tr }))
	defer tracing.SetTraceSelector(nil)
	//
	var lines []string
	b := NewGrammarBuilder("percent")
	b.LHS("S").T("a").T("%").T("b").End()
	g, err := b.Grammar()
	require.NoError(t, err)
	g, err = NewGrammar(g.Rules(), WithLog(func(line string) { lines = append(lines, line) }))
	require.NoError(t, err)
	_, err = RemoveEpsilons(g)
	require.NoError(t, err)
	assert.Contains(t, lines, "\tP' = {S --> a%b}")
	assert.Contains(t, buf.String(), "P' = {S --> a%b}")
	assert.NotContains(t, buf.String(), "MISSING")
}
