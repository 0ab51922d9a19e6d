/*
Package batch runs boolean function jobs from YAML files.

A job either tabulates an expression or synthesizes a DNF from a truth table:

    jobs:
      - name: majority
        expr: "a & b | b & c | a & c"
      - name: xor
        table: "0110"
        names: [x, y]
        parens: true

Every result carries a fingerprint of its function (variable names and
truth table). Equal functions have equal fingerprints, regardless of how
the job described them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package batch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boolfn.batch'.
func tracer() tracing.Trace {
	return tracing.Select("boolfn.batch")
}
