package scanner

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sync"

	"github.com/npillmayer/boolfn"
	"github.com/timtadh/lexmachine"
)

// The literal lexemes and their token kinds
var lexemes = map[string]boolfn.Kind{
	"&": boolfn.And, "*": boolfn.And, "∧": boolfn.And,
	"|": boolfn.Or, "+": boolfn.Or, "∨": boolfn.Or,
	"^": boolfn.Xor, "⊕": boolfn.Xor,
	"!": boolfn.Not, "~": boolfn.Not, "¬": boolfn.Not,
	"=": boolfn.Eq, "<->": boolfn.Eq, "≡": boolfn.Eq,
	"->": boolfn.ImpliesAB, "→": boolfn.ImpliesAB,
	"<-": boolfn.ImpliesBA, "←": boolfn.ImpliesBA,
	"!&": boolfn.Nand, "⊼": boolfn.Nand,
	"!|": boolfn.Nor, "↓": boolfn.Nor, "⊽": boolfn.Nor,
	"1": boolfn.One,
	"0": boolfn.Zero,
	"(": boolfn.Open,
	")": boolfn.Close,
}

var lexer *LMAdapter
var lexerErr error

var lexerOnce sync.Once // monitors one-time creation of the lexer

// Lexer returns the lexmachine lexer for boolean expressions. The DFA is
// compiled once, on first use.
func Lexer() (*LMAdapter, error) {
	lexerOnce.Do(func() {
		tracer().Infof("Creating lexer")
		literals := make([]string, 0, len(lexemes))
		for lit := range lexemes {
			literals = append(literals, lit)
		}
		init := func(lx *lexmachine.Lexer) {
			lx.Add([]byte(`[A-Za-z_][A-Za-z0-9_]*`), MakeToken(boolfn.Var))
			lx.Add([]byte(`( |\t|\n|\r)+`), Skip)
		}
		lexer, lexerErr = NewLMAdapter(init, literals, lexemes)
	})
	return lexer, lexerErr
}

// Tokenize splits an input text into tokens. It returns the tokens and their
// spans within the input. If the input contains characters not belonging to
// the expression language, Tokenize returns an error of kind boolfn.SyntaxError
// for the first of them.
//
// Tokenize does not validate the token sequence, see expr.Validate.
func Tokenize(input string) (boolfn.Tokens, []boolfn.Span, error) {
	lm, err := Lexer()
	if err != nil {
		return nil, nil, err
	}
	scan, err := lm.Scanner(input)
	if err != nil {
		return nil, nil, err
	}
	var firstErr error
	scan.SetErrorHandler(func(e error) {
		tracer().Debugf("scanner error: %v", e)
		if firstErr == nil {
			firstErr = e
		}
	})
	var tokens boolfn.Tokens
	var spans []boolfn.Span
	for {
		tok, span, eof := scan.NextToken()
		if eof {
			break
		}
		tokens = append(tokens, tok)
		spans = append(spans, span)
	}
	if firstErr != nil {
		return nil, nil, firstErr
	}
	return tokens, spans, nil
}

// MustTokenize is like Tokenize, but panics on error. It is intended for
// constant expressions in tests and initializers.
func MustTokenize(input string) boolfn.Tokens {
	tokens, _, err := Tokenize(input)
	if err != nil {
		panic(err)
	}
	return tokens
}
