/*
Package scanner tokenizes the text form of boolean expressions, using the
lexmachine scanner generator.

Connectives may be written in ASCII or with their Unicode symbols:

    and            &   *   ∧
    or             |   +   ∨
    xor            ^   ⊕
    not            !   ~   ¬
    equivalence    =   <-> ≡
    implication    ->  →
    converse       <-  ←
    nand           !&  ⊼
    nor            !|  ↓   ⊽

Constants are 0 and 1, variables are identifiers starting with a letter or
an underscore. Whitespace is ignored.

    tokens, spans, err := scanner.Tokenize("!(a | b) & c")

Spans report byte positions of the tokens within the input text and may be
used to point users to the position of an error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boolfn.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("boolfn.scanner")
}
