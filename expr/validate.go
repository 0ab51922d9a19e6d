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

// Validate checks if a token sequence is a well-formed expression.
// It returns nil or an error of kind boolfn.SyntaxError, carrying the
// reason and the offending token position.
//
// Expressions are well-formed if
//
//   ■ parentheses are balanced,
//
//   ■ there is one more operand (variable or constant) than binary connectives,
//
//   ■ no operand immediately follows another operand. Negation and parentheses
//     are ignored for this check, i.e. `a (b)` and `a !b` are rejected,
//
//   ■ connectives, negations and parentheses stand where an expression may hold
//     them: `a ! & b`, `(a &) b` and `()` are rejected.
//
func Validate(ts boolfn.Tokens) error {
	if len(ts) == 0 {
		return boolfn.Syntax(boolfn.EmptyExpression, -1, "empty expression")
	}
	// depth increments on '(' and decrements on ')', and must never drop below 0
	depth, binaries, operands := 0, 0, 0
	lastOperand := false
	for i, t := range ts {
		switch {
		case t.Kind == boolfn.Open:
			depth++
		case t.Kind == boolfn.Close:
			if depth == 0 {
				return reject(boolfn.Syntax(boolfn.UnbalancedClose, i, "unbalanced closing parenthesis"))
			}
			depth--
		case t.Kind == boolfn.Not:
		case t.IsBinary():
			binaries++
			lastOperand = false
		case t.IsOperand():
			if lastOperand {
				return reject(boolfn.Syntax(boolfn.AdjacentOperands, i, "expected operator, got %s", t))
			}
			lastOperand = true
			operands++
		default:
			return reject(boolfn.Syntax(boolfn.IllegalInput, i, "illegal token kind %d", t.Kind))
		}
	}
	if binaries+1 != operands {
		return reject(boolfn.Syntax(boolfn.ArityMismatch, -1,
			"number of operands (%d) does not match number of binary operators (%d)",
			operands, binaries))
	}
	if depth != 0 {
		return reject(boolfn.Syntax(boolfn.UnbalancedOpen, -1, "unbalanced opening parenthesis"))
	}
	return checkPlacement(ts)
}

// checkPlacement runs a two-state automaton over a sequence: either an operand
// is expected (at the start, after a binary connective, after '(' and after
// negation) or a binary connective is expected (after an operand and after ')').
func checkPlacement(ts boolfn.Tokens) error {
	wantOperand := true
	for i, t := range ts {
		if wantOperand {
			switch {
			case t.IsOperand():
				wantOperand = false
			case t.Kind == boolfn.Not, t.Kind == boolfn.Open:
			default:
				return reject(boolfn.Syntax(boolfn.MisplacedOperator, i, "expected operand, got %s", t))
			}
			continue
		}
		switch {
		case t.IsBinary():
			wantOperand = true
		case t.Kind == boolfn.Close:
		default:
			return reject(boolfn.Syntax(boolfn.MisplacedOperator, i, "expected connective, got %s", t))
		}
	}
	if wantOperand {
		return reject(boolfn.Syntax(boolfn.MisplacedOperator, len(ts)-1, "missing operand at end of expression"))
	}
	return nil
}

func reject(err *boolfn.Error) error {
	tracer().Debugf("invalid expression: %v", err)
	return err
}
