/*
Package boolrepl/main provides an interactive command line tool for boolean
functions. Users enter expressions and get the variables, the truth table and
a disjunctive normal form of the function. Truth tables may be entered as
well, to synthesize an expression from them.

    boolrepl> a -> b
    boolrepl> :dnf 0110 x y
    boolrepl> :tree !(a | b) & c
    boolrepl> :equiv a -> b ; !a | b

Job files (see package batch) are processed non-interactively with flag -batch.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boolfn.repl'
func tracer() tracing.Trace {
	return tracing.Select("boolfn.repl")
}

// traceKeys lists the tracers of the library packages. They are set to the
// trace level given by flag.
var traceKeys = []string{
	"boolfn.repl",
	"boolfn.expr",
	"boolfn.table",
	"boolfn.dnf",
	"boolfn.scanner",
	"boolfn.batch",
	"boolfn.bdd",
}
