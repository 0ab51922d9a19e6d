package scanner

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/boolfn"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ("&", "->", "∧", …) and a map for translating literals to
// their token kinds.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, kinds map[string]boolfn.Kind) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		adapter.Lexer.Add([]byte(quote(lit)), MakeToken(kinds[lit]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// quote escapes ASCII punctuation of a literal for use as a lexmachine
// pattern. Multi-byte characters are matched as plain byte sequences.
func quote(lit string) string {
	var b strings.Builder
	for _, r := range lit {
		if r < 0x80 && !isAlnum(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

// Scanner creates a scanner for a given input.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{s, logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, producing boolean
// expression tokens.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken returns the next token of the input together with its position.
// After the last token, NextToken returns eof = true.
//
// Input which cannot be matched is reported to the error handler and skipped.
func (lms *LMScanner) NextToken() (tok boolfn.Token, span boolfn.Span, eof bool) {
	t, err, eof := lms.scanner.Next()
	for err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.Error(boolfn.Syntax(boolfn.IllegalInput, -1, "illegal input at byte %d", ui.StartTC))
			lms.scanner.TC = ui.FailTC
			if ui.FailTC <= ui.StartTC {
				lms.scanner.TC = ui.StartTC + 1
			}
		} else {
			lms.Error(err)
		}
		t, err, eof = lms.scanner.Next()
	}
	if eof {
		return boolfn.Token{}, boolfn.Span{}, true
	}
	token := t.(*lexmachine.Token)
	tracer().Debugf("token %q at %d", token.Lexeme, token.TC)
	span = boolfn.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))}
	kind := boolfn.Kind(token.Type)
	if kind == boolfn.Var {
		return boolfn.V(string(token.Lexeme)), span, false
	}
	return boolfn.Token{Kind: kind}, span, false
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(kind boolfn.Kind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(kind), string(m.Bytes), m), nil
	}
}
