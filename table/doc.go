/*
Package table produces truth tables for boolean expressions.

A truth table for n variables is a sequence of 2^n booleans. Entry i holds the
value of the expression for the i-th assignment in enumeration order: starting
with all variables false, each step increments the assignment like a binary
number, with the first variable being the most significant bit.

    a b | a∧b
    0 0 |  0
    0 1 |  0
    1 0 |  0
    1 1 |  1      =>  table 0001

Package table also reshapes externally supplied tables (rows of input bits
followed by output bits) into one truth table per output.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package table

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boolfn.table'
func tracer() tracing.Trace {
	return tracing.Select("boolfn.table")
}
