package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/boolfn"
	"github.com/npillmayer/boolfn/bdd"
	"github.com/npillmayer/boolfn/dnf"
	"github.com/npillmayer/boolfn/expr"
	"github.com/npillmayer/boolfn/pretty"
	"github.com/npillmayer/boolfn/scanner"
	"github.com/npillmayer/boolfn/table"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
	quit bool
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for !intp.quit {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		intp.Eval(line) // errors are displayed by Eval
	}
	println("Good bye!")
}

// Eval executes a single input line, which is either a command (starting
// with ':') or an expression.
func (intp *Intp) Eval(line string) error {
	var err error
	if strings.HasPrefix(line, ":") {
		err = intp.command(line)
	} else {
		err = intp.expression(line)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
	}
	return err
}

func (intp *Intp) command(line string) error {
	args := strings.Fields(line)
	switch args[0] {
	case ":quit", ":q":
		intp.quit = true
		return nil
	case ":dnf":
		if len(args) < 2 {
			return fmt.Errorf("usage: :dnf <table> [names…]")
		}
		return synthesize(args[1], args[2:])
	case ":equiv":
		return equivalence(strings.TrimSpace(strings.TrimPrefix(line, ":equiv")))
	case ":tree":
		return showTree(strings.TrimSpace(strings.TrimPrefix(line, ":tree")))
	}
	return fmt.Errorf("unknown command %s", args[0])
}

// expression prints the variables, the truth table and the DNF of an expression.
func (intp *Intp) expression(line string) error {
	tokens, spans, err := scanner.Tokenize(line)
	if err != nil {
		return err
	}
	tab, err := table.Parse(tokens)
	if err != nil {
		return withPosition(err, line, spans)
	}
	names := boolfn.VariableNames(tokens)
	pterm.Info.Printf("variables: %s\n", strings.Join(names, " "))
	if err = showTable(tab, names, tokens.String()); err != nil {
		return err
	}
	return showDNF(tab, names)
}

func synthesize(bits string, names []string) error {
	tab := table.FromString(bits)
	if len(tab) != len(bits) {
		return fmt.Errorf("table must consist of 0 and 1, is %q", bits)
	}
	if err := showTable(tab, names, "f"); err != nil {
		return err
	}
	return showDNF(tab, names)
}

// equivalence compares two expressions separated by ';'.
func equivalence(args string) error {
	parts := strings.Split(args, ";")
	if len(parts) != 2 {
		return fmt.Errorf("usage: :equiv <expr> ; <expr>")
	}
	x, _, err := scanner.Tokenize(parts[0])
	if err != nil {
		return err
	}
	y, _, err := scanner.Tokenize(parts[1])
	if err != nil {
		return err
	}
	eq, err := bdd.Equivalent(x, y)
	if err != nil {
		return err
	}
	if eq {
		pterm.Info.Printf("%s ≡ %s\n", x, y)
	} else {
		pterm.Info.Printf("%s and %s differ\n", x, y)
	}
	return nil
}

func showTree(input string) error {
	tokens, spans, err := scanner.Tokenize(input)
	if err != nil {
		return err
	}
	tree, err := expr.Compile(tokens)
	if err != nil {
		return withPosition(err, input, spans)
	}
	var ll pterm.LeveledList
	tree.Walk(func(depth int, label string) {
		ll = append(ll, pterm.LeveledListItem{Level: depth, Text: label})
	})
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	pterm.Println(tokens.String())
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
	return nil
}

func showTable(tab table.Table, names []string, label string) error {
	rows, err := pretty.Rows(tab, names, label)
	if err != nil {
		return err
	}
	if tracer().GetTraceLevel() == tracing.LevelDebug {
		var b strings.Builder
		if err = pretty.Render(&b, tab, names, label); err != nil {
			return err
		}
		tracer().Debugf("\n%s", b.String())
	}
	pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData(rows)).Render()
	return nil
}

func showDNF(tab table.Table, names []string) error {
	ts, err := dnf.Synthesize(tab, names, true)
	if err != nil {
		return err
	}
	pterm.Info.Printf("DNF: %s\n", dnfString(ts))
	return nil
}

// dnfString renders a DNF, with the empty DNF shown as constant false.
func dnfString(ts boolfn.Tokens) string {
	if len(ts) == 0 {
		return boolfn.ZERO.String()
	}
	return ts.String()
}

// --- Error positions -------------------------------------------------------

// withPosition decorates a syntax error with a marker line pointing to the
// offending token.
func withPosition(err error, input string, spans []boolfn.Span) error {
	var e *boolfn.Error
	if !errors.As(err, &e) || e.Pos < 0 || e.Pos >= len(spans) {
		return err
	}
	span := spans[e.Pos]
	col := len([]rune(input[:span.From()]))
	width := len([]rune(input[span.From():span.To()]))
	return fmt.Errorf("%w\n    %s\n    %s%s", err, input,
		strings.Repeat(" ", col), strings.Repeat("^", width))
}
