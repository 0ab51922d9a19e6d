/*
Package boolfn compiles propositional-logic expressions into evaluable trees,
enumerates their truth tables and synthesizes canonical disjunctive normal forms
back from truth tables.

Package structure is as follows:

■ expr: Package expr validates token sequences, splits them by operator precedence
and builds expression trees with shared assignment cells.

■ table: Package table enumerates assignments and produces truth tables. It also
reshapes externally supplied row data into per-output truth tables.

■ dnf: Package dnf re-synthesizes sum-of-minterms expressions from truth tables.

■ scanner: Package scanner turns expression text into token sequences.

■ bdd: Package bdd decides equivalence of expressions with binary decision diagrams.

■ pretty, batch: Formatting of truth tables and YAML driven batch jobs.

The base package contains the token alphabet, variable name extraction and the
error type which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boolfn
