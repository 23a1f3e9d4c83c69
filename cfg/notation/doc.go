/*
Package notation reads grammars written in a compact textual notation.

Every rule is written on a line of its own, or separated by semicolons:

    S := aC | bA
    A := cAB
    B := aC ; C := bA | d

Symbols are single characters. Upper case letters denote non-terminals,
lower case letters and digits denote terminals, as do the usual operator and
bracket characters. The character ε denotes the empty alternative. Spaces
are insignificant, thus "a B c" is the same as "aBc".

For grammars needing longer names, non-terminals may be written in angle
brackets and terminals in single or double quotes:

    <Expr> := <Expr> '+' <Term> | <Term>
    <Term> := "id"

The definition operator may be written as ":=", "::=", "->", "-->" or "→";
the last two make the output of (*cfg.Grammar).String readable again.
A '#' starts a comment reaching to the end of the line.

The first rule defines the start symbol of the grammar, unless Parse is called
with option cfg.WithStart. Several rules for the same non-terminal are merged.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 E1izabeth

*/
package notation

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grammars.notation'.
func tracer() tracing.Trace {
	return tracing.Select("grammars.notation")
}
