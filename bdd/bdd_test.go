package bdd

import (
	"testing"

	"github.com/npillmayer/boolfn"
	"github.com/npillmayer/boolfn/dnf"
	"github.com/npillmayer/boolfn/scanner"
	"github.com/npillmayer/boolfn/table"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEquivalent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boolfn.bdd")
	defer teardown()
	//
	pairs := []struct {
		x, y  string
		equiv bool
	}{
		{"a & b", "!(!a | !b)", true},
		{"a -> b", "!a | b", true},
		{"a <- b", "b -> a", true},
		{"a ^ b", "!(a = b)", true},
		{"a !& b", "!a | !b", true},
		{"a !| b", "!a & !b", true},
		{"a & (b | !b)", "a", true},
		{"a | !a", "1", true},
		{"a", "b", false},
		{"a -> b", "b -> a", false},
	}
	for _, p := range pairs {
		eq, err := Equivalent(scanner.MustTokenize(p.x), scanner.MustTokenize(p.y))
		if err != nil {
			t.Errorf("%s vs %s: %v", p.x, p.y, err)
			continue
		}
		if eq != p.equiv {
			t.Errorf("expected equivalence of %s and %s to be %v", p.x, p.y, p.equiv)
		}
	}
}

func TestSatCount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boolfn.bdd")
	defer teardown()
	//
	counts := map[string]int64{
		"a | b":           3,
		"a & b & c":       1,
		"a ^ b ^ c":       4,
		"1":               1,
		"0":               0,
		"!(a & b) -> c":   5,
		"a & !a | b & !b": 0,
	}
	for input, expected := range counts {
		n, err := SatCount(scanner.MustTokenize(input))
		if err != nil {
			t.Errorf("%s: %v", input, err)
			continue
		}
		if n.Int64() != expected {
			t.Errorf("expected %d satisfying rows for %s, got %s", expected, input, n)
		}
	}
}

func TestSatCountMatchesTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boolfn.bdd")
	defer teardown()
	//
	ts := scanner.MustTokenize("(a | b) & !c -> d <- a")
	tab, err := table.Parse(ts)
	if err != nil {
		t.Fatal(err)
	}
	ones := 0
	for _, v := range tab {
		if v {
			ones++
		}
	}
	n, err := SatCount(ts)
	if err != nil {
		t.Fatal(err)
	}
	if n.Int64() != int64(ones) {
		t.Errorf("expected %d rows from table, BDD counts %s", ones, n)
	}
}

func TestDNFIsEquivalent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boolfn.bdd")
	defer teardown()
	//
	for _, input := range []string{"a -> b", "!(c ^ a) -> b", "a !& (b !| c)", "a = b = c"} {
		ts := scanner.MustTokenize(input)
		tab, err := table.Parse(ts)
		if err != nil {
			t.Fatal(err)
		}
		d, err := dnf.Synthesize(tab, boolfn.VariableNames(ts), false)
		if err != nil {
			t.Fatal(err)
		}
		eq, err := Equivalent(ts, d)
		if err != nil {
			t.Fatal(err)
		}
		if !eq {
			t.Errorf("expected DNF %s to be equivalent to %s", d, input)
		}
	}
}

func TestSpace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boolfn.bdd")
	defer teardown()
	//
	sp, err := NewSpace([]string{"x", "y", "x"})
	if err != nil {
		t.Fatal(err)
	}
	if len(sp.Names()) != 2 {
		t.Errorf("expected duplicate names to collapse, got %v", sp.Names())
	}
	if _, err = sp.Build(scanner.MustTokenize("x & z")); boolfn.KindOf(err) != boolfn.EvaluationError {
		t.Errorf("expected evaluation error for unknown variable, got %v", err)
	}
	if _, err = sp.Build(scanner.MustTokenize("x & & y")); boolfn.KindOf(err) != boolfn.SyntaxError {
		t.Errorf("expected syntax error, got %v", err)
	}
}
