/*
Package cfg implements context-free grammars and the transformations to
simplify them.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Grammars may
contain ε-productions. The first non-terminal mentioned is the start symbol.

Example:

    b := cfg.NewGrammarBuilder("G")
    b.LHS("S").N("A").T("a").End()     // S  ->  A a
    b.LHS("A").N("B").N("D").End()     // A  ->  B D
    b.LHS("B").T("b").End()            // B  ->  b
    b.LHS("B").Epsilon()               // B  ->  ε
    b.LHS("D").T("d").End()            // D  ->  d
    b.LHS("D").Epsilon()               // D  ->  ε

This results in the following grammar:

    g, _ := b.Grammar()
    fmt.Println(g)

    S --> Aa
    A --> BD
    B --> b|ε
    D --> d|ε

Grammars are immutable. Package notation offers a shorter way to write them down.

Transformations

Four transformations are provided, each receiving a grammar and returning
a new, equivalent grammar:

    RemoveNonProducing   removes non-terminals which cannot derive a terminal string
    RemoveUnreachable    removes symbols which cannot be reached from the start symbol
    RemoveEpsilons       removes ε-productions (except S → ε, if S is nullable)
    RemoveChains         removes chain productions A → B

Each of them computes a fixpoint set over the grammar's symbols and then
filters or rewrites the rules. The rounds of the fixpoint computations are
traced to the tracer with key 'grammars.cfg' and, more tersely, to a
diagnostic sink installed with WithLog:

    g, _ := notation.Parse("S := aC | bA\nA := cAB\nB := aC\nC := bA | d",
            cfg.WithLog(func(line string) { fmt.Println(line) }))
    g, _ = cfg.RemoveNonProducing(g)

    // Output:
    RemoveNonProducingRules()
        VN0 = {}
        VN1 = {C}
        VN2 = {C, S, B}
        VN3 = {C, S, B}

RemoveChains works on the ε-free version of its input grammar, i.e. it calls
RemoveEpsilons itself (without re-admitting S → ε during this step).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 E1izabeth

*/
package cfg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grammars.cfg'.
func tracer() tracing.Trace {
	return tracing.Select("grammars.cfg")
}
