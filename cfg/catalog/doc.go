/*
Package catalog manages collections of named grammars, stored as TOML files.

A catalog file starts with a format header, followed by any number of grammar
entries. Grammar texts are written in the notation of package notation:

    format = "GRAMMARS"

    [[grammar]]
    name = "task1"
    description = "non-producing and unreachable symbols"
    text = """
    S := aC | bA
    A := cAB
    B := aC
    C := bA | d
    """
    pipeline = ["producing", "reachable"]

Field start names an explicit start symbol; without it, the first rule of
the text is the start rule. Field pipeline lists the transformations to apply,
defaulting to all four in the order producing, reachable, epsilon, chain.
Setting no_start_epsilon suppresses S → ε in the transformation results.

The catalog of example grammars is compiled into the package, see Default.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 E1izabeth

*/
package catalog

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grammars.catalog'.
func tracer() tracing.Trace {
	return tracing.Select("grammars.catalog")
}
