package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/boolfn"
)

// noOperator is the precedence score of tokens which are not operators.
const noOperator = 0xff

// Low precedence splits first, i.e. ends up high in the tree.
var precedence = map[boolfn.Kind]int{
	boolfn.Or:        0,
	boolfn.Nor:       0,
	boolfn.Eq:        0,
	boolfn.ImpliesAB: 0,
	boolfn.ImpliesBA: 0,
	boolfn.Xor:       1,
	boolfn.And:       2,
	boolfn.Nand:      2,
	boolfn.Not:       3,
}

func precedenceOf(t boolfn.Token) int {
	if p, ok := precedence[t.Kind]; ok {
		return p
	}
	return noOperator
}

// bundle is the result of splitting a token sequence: a center token with zero,
// one (left only, for negation) or two operand sequences.
type bundle struct {
	left   boolfn.Tokens
	right  boolfn.Tokens
	center boolfn.Token
}

func (b bundle) isLeaf() bool {
	return b.left == nil && b.right == nil
}

func (b bundle) isUnary() bool {
	return b.left != nil && b.right == nil
}

// split decomposes a validated token sequence into three parts:
//
//    a & b | (c | d)  =>  [a & b] | [(c | d)]
//
// split expects a validated sequence and panics if operand sequences are missing.
func split(ts boolfn.Tokens) bundle {
	if len(ts) == 0 {
		panic("cannot split empty expression; did the expression pass validation?")
	}
	for len(ts) > 1 && isParenthesized(ts) {
		ts = ts[1 : len(ts)-1]
	}
	if len(ts) == 1 {
		return bundle{center: ts[0]}
	}
	return splitOperator(ts)
}

// isParenthesized checks whether a sequence is a single group enclosed in
// parentheses: (a & b) => true, (a) & (b) => false
func isParenthesized(ts boolfn.Tokens) bool {
	if ts[0].Kind != boolfn.Open || ts[len(ts)-1].Kind != boolfn.Close {
		return false
	}
	depth := 1
	for _, t := range ts[1 : len(ts)-1] {
		switch t.Kind {
		case boolfn.Open:
			depth++
		case boolfn.Close:
			depth--
		}
		if depth == 0 {
			return false
		}
	}
	return true
}

func splitOperator(ts boolfn.Tokens) bundle {
	index := splitIndex(ts)
	if index == 0 {
		if ts[0].Kind != boolfn.Not {
			panic("no operator to split expression " + ts.String())
		}
		return bundle{center: ts[0], left: ts[1:]}
	}
	if index == len(ts)-1 {
		panic("missing right operand in expression " + ts.String())
	}
	return bundle{
		left:   ts[:index],
		center: ts[index],
		right:  ts[index+1:],
	}
}

// splitIndex returns the index of the operator at which the expression has to
// be split: (a|b)&c => 5. Only operators outside of parentheses are considered;
// of these the leftmost one with the lowest precedence is chosen.
func splitIndex(ts boolfn.Tokens) int {
	index, score := 0, noOperator
	depth := 0
	for i, t := range ts {
		switch t.Kind {
		case boolfn.Open:
			depth++
			continue
		case boolfn.Close:
			depth--
			continue
		}
		if depth > 0 {
			continue
		}
		if p := precedenceOf(t); p < score {
			index, score = i, p
			if score == 0 {
				break
			}
		}
	}
	return index
}
