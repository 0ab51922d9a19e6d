/*
Package bdd checks boolean expressions with binary decision diagrams.

Truth tables grow with 2^n rows for n variables. BDDs often stay small, which
makes them suitable for comparing functions: two expressions are equivalent
if and only if their reduced diagrams share the root node.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bdd

import (
	"fmt"
	"math/big"

	"github.com/dalzilio/rudd"
	"github.com/npillmayer/boolfn"
	"github.com/npillmayer/boolfn/expr"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boolfn.bdd'.
func tracer() tracing.Trace {
	return tracing.Select("boolfn.bdd")
}

// engine is the subset of rudd operations we build diagrams with.
type engine interface {
	Ithvar(i int) rudd.Node
	Not(n rudd.Node) rudd.Node
	And(n ...rudd.Node) rudd.Node
	Or(n ...rudd.Node) rudd.Node
	Imp(n1, n2 rudd.Node) rudd.Node
	Equiv(n1, n2 rudd.Node) rudd.Node
	Equal(n1, n2 rudd.Node) bool
	True() rudd.Node
	False() rudd.Node
	Satcount(n rudd.Node) *big.Int
	Error() string
}

// Space is a set of named variables, each mapped to a BDD level. Diagrams
// built within the same space may be compared.
type Space struct {
	bdd    engine
	levels map[string]int
	names  []string
}

// NewSpace creates a BDD space for the given variables. Level order is the
// order of names.
func NewSpace(names []string) (*Space, error) {
	levels := make(map[string]int, len(names))
	var unique []string
	for _, name := range names {
		if _, ok := levels[name]; !ok {
			levels[name] = len(unique)
			unique = append(unique, name)
		}
	}
	varnum := len(unique)
	if varnum == 0 {
		varnum = 1 // rudd needs at least one variable
	}
	b, err := rudd.New(varnum)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("BDD space for %v", unique)
	return &Space{bdd: b, levels: levels, names: unique}, nil
}

// Names returns the variables of the space in level order.
func (sp *Space) Names() []string {
	return sp.names
}

// Build compiles an expression into a diagram of the space. All variables of
// the expression must belong to the space.
func (sp *Space) Build(ts boolfn.Tokens) (rudd.Node, error) {
	tree, err := expr.Compile(ts)
	if err != nil {
		return nil, err
	}
	for _, name := range tree.Bindings().Names() {
		if _, ok := sp.levels[name]; !ok {
			return nil, boolfn.Evaluation("variable %s is not part of the BDD space", name)
		}
	}
	n := tree.Fold(builder{sp}).(rudd.Node)
	if msg := sp.bdd.Error(); msg != "" {
		return nil, fmt.Errorf("BDD error: %s", msg)
	}
	return n, nil
}

// Equal tests if two diagrams of the space denote the same function.
func (sp *Space) Equal(n1, n2 rudd.Node) bool {
	return sp.bdd.Equal(n1, n2)
}

// SatCount returns the number of assignments to the variables of the space
// which satisfy n.
func (sp *Space) SatCount(n rudd.Node) *big.Int {
	if len(sp.names) == 0 {
		if sp.bdd.Equal(n, sp.bdd.True()) {
			return big.NewInt(1)
		}
		return big.NewInt(0)
	}
	return sp.bdd.Satcount(n)
}

// builder folds an expression tree into a diagram.
type builder struct {
	sp *Space
}

func (b builder) Const(v bool) interface{} {
	if v {
		return b.sp.bdd.True()
	}
	return b.sp.bdd.False()
}

func (b builder) Var(slot int, name string) interface{} {
	return b.sp.bdd.Ithvar(b.sp.levels[name])
}

func (b builder) Not(x interface{}) interface{} {
	return b.sp.bdd.Not(x.(rudd.Node))
}

func (b builder) Binary(op boolfn.Kind, left, right interface{}) interface{} {
	l, r := left.(rudd.Node), right.(rudd.Node)
	d := b.sp.bdd
	switch op {
	case boolfn.And:
		return d.And(l, r)
	case boolfn.Or:
		return d.Or(l, r)
	case boolfn.Xor:
		return d.Not(d.Equiv(l, r))
	case boolfn.Eq:
		return d.Equiv(l, r)
	case boolfn.ImpliesAB:
		return d.Imp(l, r)
	case boolfn.ImpliesBA:
		return d.Imp(r, l)
	case boolfn.Nand:
		return d.Not(d.And(l, r))
	case boolfn.Nor:
		return d.Not(d.Or(l, r))
	}
	panic(fmt.Sprintf("unknown connective %v", op))
}

// --- Convenience -----------------------------------------------------------

// Equivalent reports whether two expressions denote the same function.
// Variables are matched by name. A variable occurring in only one of the
// expressions does not influence the other one.
func Equivalent(x, y boolfn.Tokens) (bool, error) {
	names := boolfn.VariableNames(append(append(boolfn.Tokens{}, x...), y...))
	sp, err := NewSpace(names)
	if err != nil {
		return false, err
	}
	nx, err := sp.Build(x)
	if err != nil {
		return false, err
	}
	ny, err := sp.Build(y)
	if err != nil {
		return false, err
	}
	return sp.Equal(nx, ny), nil
}

// SatCount returns the number of truth table rows of an expression which
// evaluate to true.
func SatCount(ts boolfn.Tokens) (*big.Int, error) {
	sp, err := NewSpace(boolfn.VariableNames(ts))
	if err != nil {
		return nil, err
	}
	n, err := sp.Build(ts)
	if err != nil {
		return nil, err
	}
	return sp.SatCount(n), nil
}
