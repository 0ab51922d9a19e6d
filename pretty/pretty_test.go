package pretty

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/boolfn"
	"github.com/npillmayer/boolfn/table"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, table.FromString("0001"), []string{"a", "b"}, "a∧b"); err != nil {
		t.Fatal(err)
	}
	expected := []string{
		"a b | a∧b",
		"----+----",
		"0 0 |  0",
		"0 1 |  0",
		"1 0 |  0",
		"1 1 |  1",
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(expected), len(lines), buf.String())
	}
	for i, line := range lines {
		if line != expected[i] {
			t.Errorf("line %d: expected %q, got %q", i, expected[i], line)
		}
	}
}

func TestRenderConstant(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, table.FromString("1"), nil, "f"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "| f\n+--\n| 1\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestRenderShapeError(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, table.FromString("010"), []string{"a", "b"}, "f")
	if boolfn.KindOf(err) != boolfn.ShapeError {
		t.Errorf("expected shape error, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output for malformed table, got %q", buf.String())
	}
}

func TestRows(t *testing.T) {
	rows, err := Rows(table.FromString("0110"), []string{"x", "y"}, "x⊕y")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 5 || strings.Join(rows[0], ",") != "x,y,x⊕y" {
		t.Fatalf("unexpected header %v", rows)
	}
	if strings.Join(rows[2], "") != "011" || strings.Join(rows[4], "") != "110" {
		t.Errorf("unexpected rows %v", rows)
	}
}
