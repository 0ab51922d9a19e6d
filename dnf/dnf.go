/*
Package dnf synthesizes the canonical disjunctive normal form (DNF) of a
boolean function from its truth table.

The canonical DNF is the disjunction of one minterm per row of the table with a
true result. A minterm is the conjunction of all variables, each negated if its
bit is false in that row:

    a b | f
    0 0 | 1
    0 1 | 0
    1 0 | 0
    1 1 | 1     =>  (!a ∧ !b) ∨ (a ∧ b)

See https://en.wikipedia.org/wiki/Disjunctive_normal_form

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dnf

import (
	"github.com/npillmayer/boolfn"
	"github.com/npillmayer/boolfn/expr"
	"github.com/npillmayer/boolfn/table"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boolfn.dnf'
func tracer() tracing.Trace {
	return tracing.Select("boolfn.dnf")
}

// Synthesize returns the canonical DNF of a truth table over the given variable
// names. Rows are visited in the enumeration order of package table, so the
// first name is the most significant bit. If withParentheses is set, every
// minterm is enclosed in parentheses.
//
// Names must be distinct and the table must have 2^len(names) entries,
// otherwise an error of kind boolfn.ShapeError is returned. A table without any true entry (the constant
// false function) yields an empty token sequence; callers will have to handle
// this case, as an empty sequence is not a valid expression.
func Synthesize(t table.Table, names []string, withParentheses bool) (boolfn.Tokens, error) {
	if err := table.ValidateShape(t, names); err != nil {
		return nil, err
	}
	vars := make(boolfn.Tokens, len(names))
	for i, name := range names {
		vars[i] = boolfn.V(name)
	}
	var dnf boolfn.Tokens
	values := make([]bool, len(names))
	for row := 0; ; row++ {
		if t[row] {
			dnf = appendMinterm(dnf, vars, values, withParentheses)
		}
		if !table.Next(values) {
			break
		}
	}
	if len(dnf) == 0 {
		tracer().Debugf("DNF of constant false function is empty")
		return dnf, nil
	}
	if err := expr.Validate(dnf); err != nil {
		tracer().Errorf("synthesized DNF does not validate: %v", err)
		return nil, err
	}
	tracer().Debugf("DNF = %s", dnf)
	return dnf, nil
}

func appendMinterm(dnf boolfn.Tokens, vars boolfn.Tokens, values []bool, parens bool) boolfn.Tokens {
	if len(dnf) > 0 {
		dnf = append(dnf, boolfn.OR)
	}
	if len(vars) == 0 { // constant true function
		return append(dnf, boolfn.ONE)
	}
	if parens {
		dnf = append(dnf, boolfn.OPEN)
	}
	for i, v := range vars {
		if i > 0 {
			dnf = append(dnf, boolfn.AND)
		}
		if !values[i] {
			dnf = append(dnf, boolfn.NOT)
		}
		dnf = append(dnf, v)
	}
	if parens {
		dnf = append(dnf, boolfn.CLOS)
	}
	return dnf
}
