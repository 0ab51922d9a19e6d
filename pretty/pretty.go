/*
Package pretty formats truth tables for display.

    a b | a∧b
    ----+----
    0 0 |  0
    0 1 |  0
    1 0 |  0
    1 1 |  1

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pretty

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/boolfn/table"
)

// Render writes a truth table with one column per variable and a result
// column labeled with label. The table shape is checked first; shape errors
// are returned unchanged and nothing is written.
func Render(w io.Writer, t table.Table, names []string, label string) error {
	if err := table.ValidateShape(t, names); err != nil {
		return err
	}
	widths := make([]int, len(names))
	var header, rule strings.Builder
	for i, name := range names {
		widths[i] = utf8.RuneCountInString(name)
		header.WriteString(name)
		header.WriteByte(' ')
		rule.WriteString(strings.Repeat("-", widths[i]+1))
	}
	lw := utf8.RuneCountInString(label)
	if lw < 1 {
		lw = 1
	}
	header.WriteString("| ")
	header.WriteString(label)
	rule.WriteString("+")
	rule.WriteString(strings.Repeat("-", lw+1))
	if _, err := fmt.Fprintln(w, header.String()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, rule.String()); err != nil {
		return err
	}
	values := make([]bool, len(names))
	for row := 0; row < len(t); row++ {
		var line strings.Builder
		for i, v := range values {
			line.WriteString(cell(v, widths[i]))
			line.WriteByte(' ')
		}
		line.WriteString("| ")
		line.WriteString(cell(t[row], lw))
		if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
		table.Next(values)
	}
	return nil
}

// Rows returns the table as rows of 0/1 strings, headed by the names and the
// label. This is the data format of table printers like pterm.TableData.
func Rows(t table.Table, names []string, label string) ([][]string, error) {
	if err := table.ValidateShape(t, names); err != nil {
		return nil, err
	}
	header := append(append([]string{}, names...), label)
	rows := [][]string{header}
	values := make([]bool, len(names))
	for row := 0; row < len(t); row++ {
		r := make([]string, 0, len(names)+1)
		for _, v := range values {
			r = append(r, bit(v))
		}
		rows = append(rows, append(r, bit(t[row])))
		table.Next(values)
	}
	return rows, nil
}

// cell centers a bit in a column of width w.
func cell(v bool, w int) string {
	left := (w - 1) / 2
	return strings.Repeat(" ", left) + bit(v) + strings.Repeat(" ", w-1-left)
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
