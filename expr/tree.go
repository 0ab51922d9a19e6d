package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/boolfn"
	"github.com/npillmayer/schuko/gconf"
)

type nodeType int8

const (
	constLeaf nodeType = iota
	varLeaf
	unaryNode
	binaryNode
)

// node is an entry in the node arena of a tree. Children are referenced by
// their arena index.
type node struct {
	typ         nodeType
	op          boolfn.Kind // connective for unary and binary nodes
	left, right int         // child indices; unary nodes use left only
	slot        int         // cell index for variable leaves
	value       bool        // fixed value for constant leaves
}

// Tree is an expression tree. Its shape is fixed after construction; evaluation
// reads the current values of the tree's bindings.
type Tree struct {
	nodes    []node
	root     int
	bindings *Bindings
}

// Compile validates a token sequence, binds its variables in order of first
// occurence and builds an expression tree.
func Compile(ts boolfn.Tokens) (*Tree, error) {
	if err := Validate(ts); err != nil {
		return nil, err
	}
	return Build(ts, NewBindings(boolfn.VariableNames(ts)))
}

// Build creates an expression tree from a token sequence. The sequence must have
// passed Validate; Build does not re-validate and will panic on malformed input.
//
// Every variable in ts must be bound in bindings. A missing binding is a
// breach of contract and results in an error of kind boolfn.EvaluationError.
// If configuration flag 'panic-on-contract-violation' is set, Build panics instead.
func Build(ts boolfn.Tokens, bindings *Bindings) (*Tree, error) {
	tree := &Tree{
		nodes:    make([]node, 0, len(ts)),
		bindings: bindings,
	}
	root, err := tree.build(ts)
	if err != nil {
		return nil, err
	}
	tree.root = root
	tracer().Debugf("built tree with %d nodes for %d variables", len(tree.nodes), bindings.Size())
	return tree, nil
}

func (tree *Tree) build(ts boolfn.Tokens) (int, error) {
	b := split(ts)
	switch {
	case b.isLeaf():
		return tree.leaf(b.center)
	case b.isUnary():
		child, err := tree.build(b.left)
		if err != nil {
			return 0, err
		}
		return tree.add(node{typ: unaryNode, op: b.center.Kind, left: child}), nil
	}
	left, err := tree.build(b.left)
	if err != nil {
		return 0, err
	}
	right, err := tree.build(b.right)
	if err != nil {
		return 0, err
	}
	return tree.add(node{typ: binaryNode, op: b.center.Kind, left: left, right: right}), nil
}

func (tree *Tree) leaf(t boolfn.Token) (int, error) {
	switch t.Kind {
	case boolfn.Zero:
		return tree.add(node{typ: constLeaf, value: false}), nil
	case boolfn.One:
		return tree.add(node{typ: constLeaf, value: true}), nil
	case boolfn.Var:
		slot, found := tree.bindings.Resolve(t.Name)
		if !found {
			return 0, contractViolation(boolfn.Evaluation("variable %q has no assignment cell", t.Name))
		}
		return tree.add(node{typ: varLeaf, slot: slot}), nil
	}
	panic(fmt.Sprintf("token %v is not an operand; did the expression pass validation?", t))
}

func (tree *Tree) add(n node) int {
	tree.nodes = append(tree.nodes, n)
	return len(tree.nodes) - 1
}

func contractViolation(err *boolfn.Error) error {
	tracer().Errorf(err.Error())
	if gconf.GetBool("panic-on-contract-violation") {
		panic(err)
	}
	return err
}

// Bindings returns the assignment cells the tree's variable leaves refer to.
func (tree *Tree) Bindings() *Bindings {
	return tree.bindings
}

// Size returns the number of nodes in the tree.
func (tree *Tree) Size() int {
	return len(tree.nodes)
}

// --- Evaluation ------------------------------------------------------------

// Eval evaluates the tree against the current values of its bindings.
func (tree *Tree) Eval() bool {
	return tree.eval(tree.root)
}

// The right child is evaluated first. Only ∧ and ∨ short-circuit.
func (tree *Tree) eval(i int) bool {
	n := &tree.nodes[i]
	switch n.typ {
	case constLeaf:
		return n.value
	case varLeaf:
		return tree.bindings.Values[n.slot]
	case unaryNode:
		return !tree.eval(n.left)
	}
	right := tree.eval(n.right)
	switch n.op {
	case boolfn.And:
		if !right {
			return false
		}
		return tree.eval(n.left)
	case boolfn.Or:
		if right {
			return true
		}
		return tree.eval(n.left)
	}
	left := tree.eval(n.left)
	switch n.op {
	case boolfn.Xor:
		return left != right
	case boolfn.Eq:
		return left == right
	case boolfn.ImpliesAB:
		return !left || right
	case boolfn.ImpliesBA:
		return left || !right
	case boolfn.Nand:
		return !(left && right)
	case boolfn.Nor:
		return !(left || right)
	}
	panic(fmt.Sprintf("node %d has unknown connective %v", i, n.op))
}

// --- Folding ---------------------------------------------------------------

// Folder computes a value for a tree bottom-up. See Tree.Fold.
type Folder interface {
	Const(v bool) interface{}
	Var(slot int, name string) interface{}
	Not(x interface{}) interface{}
	Binary(op boolfn.Kind, left, right interface{}) interface{}
}

// Fold reduces a tree with a Folder, children before parents and left children
// before right ones. Fold does not read the current values of the bindings.
func (tree *Tree) Fold(f Folder) interface{} {
	return tree.fold(tree.root, f)
}

func (tree *Tree) fold(i int, f Folder) interface{} {
	n := &tree.nodes[i]
	switch n.typ {
	case constLeaf:
		return f.Const(n.value)
	case varLeaf:
		return f.Var(n.slot, tree.bindings.names[n.slot])
	case unaryNode:
		return f.Not(tree.fold(n.left, f))
	}
	left := tree.fold(n.left, f)
	return f.Binary(n.op, left, tree.fold(n.right, f))
}

// --- Walking and dumping -------------------------------------------------------

// Walk visits the tree in pre-order, calling visit with the depth and a label for
// each node. Labels are connective symbols, variable names or constants.
func (tree *Tree) Walk(visit func(depth int, label string)) {
	tree.walk(tree.root, 0, visit)
}

func (tree *Tree) walk(i int, depth int, visit func(int, string)) {
	n := &tree.nodes[i]
	switch n.typ {
	case constLeaf:
		if n.value {
			visit(depth, boolfn.One.String())
		} else {
			visit(depth, boolfn.Zero.String())
		}
	case varLeaf:
		visit(depth, tree.bindings.names[n.slot])
	case unaryNode:
		visit(depth, n.op.String())
		tree.walk(n.left, depth+1, visit)
	case binaryNode:
		visit(depth, n.op.String())
		tree.walk(n.left, depth+1, visit)
		tree.walk(n.right, depth+1, visit)
	}
}

// Dump traces the tree structure, one node per line (debug level).
func (tree *Tree) Dump() {
	tracer().Debugf("--- expression tree -------")
	tree.Walk(func(depth int, label string) {
		tracer().Debugf("%s%s", strings.Repeat("  ", depth), label)
	})
	tracer().Debugf("---------------------------")
}
