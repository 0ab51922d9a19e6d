package table

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/boolfn"
	"github.com/npillmayer/boolfn/expr"
)

// MaxVariables limits the number of variables a table may be built for.
// Tables grow with 2^n, so this is a guard against exhausting memory.
// Values above 30 are treated as 30.
var MaxVariables = 24

// hardLimit keeps 2^n within a 32-bit int.
const hardLimit = 30

// variableLimit is MaxVariables, clamped to hardLimit.
func variableLimit() int {
	if MaxVariables > hardLimit {
		return hardLimit
	}
	return MaxVariables
}

func tooManyVariables(n int) error {
	if n > variableLimit() {
		return boolfn.Shape("too many variables: %d, maximum is %d", n, variableLimit())
	}
	return nil
}

// Table is a truth table, i.e. the result column of a full table read
// top to bottom.
type Table []bool

// String renders a table as a string of 0s and 1s.
func (t Table) String() string {
	var b strings.Builder
	for _, v := range t {
		if v {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Equal compares two tables entry by entry.
func (t Table) Equal(other Table) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}
	return true
}

// FromString creates a table from a string of 0s and 1s. All other characters
// are ignored, which allows for grouping: "1111 0100 0100 0100".
func FromString(s string) Table {
	t := make(Table, 0, len(s))
	for _, r := range s {
		switch r {
		case '0':
			t = append(t, false)
		case '1':
			t = append(t, true)
		}
	}
	return t
}

// Rows returns 2^n for n variables.
func Rows(n int) int {
	return 1 << uint(n)
}

// ValidateShape checks that a table has exactly 2^n entries for n distinct
// names. It returns an error of kind boolfn.ShapeError otherwise.
func ValidateShape(t Table, names []string) error {
	n := len(names)
	if err := tooManyVariables(n); err != nil {
		return err
	}
	seen := make(map[string]bool, n)
	for _, name := range names {
		if seen[name] {
			return boolfn.Shape("duplicate variable name %q", name)
		}
		seen[name] = true
	}
	if len(t) != Rows(n) {
		return boolfn.Shape("unexpected table length, expected 2^%d = %d, got %d", n, Rows(n), len(t))
	}
	return nil
}

// Parse validates an expression, builds its expression tree and enumerates
// all assignments. It returns the truth table with 2^n entries for the n
// variables of the expression (see boolfn.VariableNames).
//
//    a & b  =>  0001
//
func Parse(ts boolfn.Tokens) (Table, error) {
	if err := expr.Validate(ts); err != nil {
		return nil, err
	}
	names := boolfn.VariableNames(ts)
	if err := tooManyVariables(len(names)); err != nil {
		return nil, err
	}
	tree, err := expr.Build(ts, expr.NewBindings(names))
	if err != nil {
		return nil, err
	}
	tree.Dump()
	return Tabulate(tree), nil
}

// Tabulate evaluates an expression tree for every assignment of its bindings,
// starting from all-false. The bindings are all-false again afterwards.
func Tabulate(tree *expr.Tree) Table {
	values := tree.Bindings().Values
	tree.Bindings().Reset()
	result := make(Table, 0, Rows(len(values)))
	for {
		result = append(result, tree.Eval())
		if !Next(values) {
			break
		}
	}
	tracer().Debugf("tabulated %d variables: %s", len(values), result)
	return result
}
