/*
Package gnorm/main provides a command line tool for normalizing context-free
grammars.

In batch mode (the default), gnorm runs the transformation pipeline of
every grammar of a catalog and prints the input grammar and the result of
every step, together with a protocol of the fixpoint iterations:

    gnorm                        # run the built-in example catalog
    gnorm -f my.toml task2       # run grammar "task2" of catalog my.toml
    gnorm --table -q             # print grammars as tables, without protocol

With flag -i, gnorm starts an interactive session. Rules typed in notation
(see package notation) are added to the current grammar; commands starting
with a colon apply transformations to it. Type ":help" for a list of commands.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 E1izabeth

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grammars.gnorm'
func tracer() tracing.Trace {
	return tracing.Select("grammars.gnorm")
}
