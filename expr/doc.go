/*
Package expr compiles token sequences of boolean expressions into evaluable
expression trees.

Compilation runs in three steps:

■ Validate checks a token sequence for balanced parentheses, matching operator and
operand counts and operands not following each other without an operator.

■ The splitter recursively decomposes a validated sequence at its loosest binding
top-level operator. Chains of equal precedence are split at the leftmost operator.

■ Build creates a tree from the decomposition. Variable leaves refer to cells of a
set of Bindings, one cell per distinct variable name, so that every occurence
of a variable observes the same value.

Trees are evaluated against the current contents of their bindings:

    tree, err := expr.Compile(tokens)
    …
    tree.Bindings().Set("a", true)
    result := tree.Eval()

Trees and bindings are not safe for concurrent use. Clients evaluating in
parallel have to compile a tree per worker.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boolfn.expr'
func tracer() tracing.Trace {
	return tracing.Select("boolfn.expr")
}
