/*
Package grammars is a toolbox for simplifying context-free grammars.

It removes symbols and productions which are redundant for any language
a grammar describes: non-generating symbols, unreachable symbols, ε-productions
and chain (unit) productions. The results are equivalent grammars, better
suited for parser construction or grammar analysis. Package structure is
as follows:

■ cfg: Package cfg implements the grammar data model (symbols, alternatives,
rules, grammars) together with the four grammar transformations.

■ cfg/notation: Package notation reads grammars written in a terse one-line-per-rule
notation, e.g.

    S := ABC | aBC
    B := bB | ε

■ cfg/catalog: Package catalog loads named grammars and their transformation
pipelines from TOML files.

■ cfg/notation/gnorm: Command gnorm runs transformation pipelines in batch mode
or in an interactive session.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 E1izabeth

*/
package grammars
