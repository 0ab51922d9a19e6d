package dnf

import (
	"testing"

	"github.com/npillmayer/boolfn"
	"github.com/npillmayer/boolfn/table"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var a, b, c = boolfn.V("a"), boolfn.V("b"), boolfn.V("c")

func TestSynthesizeSmall(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boolfn.dnf")
	defer teardown()
	//
	names := []string{"a", "b"}
	dnf, err := Synthesize(table.FromString("0001"), names, true)
	if err != nil {
		t.Fatal(err)
	}
	if !dnf.Equal(boolfn.Tokens{boolfn.OPEN, a, boolfn.AND, b, boolfn.CLOS}) {
		t.Errorf("expected (a ∧ b), got %s", dnf)
	}
	dnf, err = Synthesize(table.FromString("0001"), names, false)
	if err != nil {
		t.Fatal(err)
	}
	if !dnf.Equal(boolfn.Tokens{a, boolfn.AND, b}) {
		t.Errorf("expected a ∧ b, got %s", dnf)
	}
}

func TestSynthesizeLong(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boolfn.dnf")
	defer teardown()
	//
	names := []string{"a", "b", "c"}
	dnf, err := Synthesize(table.FromString("1100 1100"), names, true)
	if err != nil {
		t.Fatal(err)
	}
	expected := "(!a ∧ !b ∧ !c) ∨ (!a ∧ !b ∧ c) ∨ (a ∧ !b ∧ !c) ∨ (a ∧ !b ∧ c)"
	if dnf.String() != expected {
		t.Errorf("expected %s, got %s", expected, dnf)
	}
	dnf, err = Synthesize(table.FromString("1100 1100"), names, false)
	if err != nil {
		t.Fatal(err)
	}
	expected = "!a ∧ !b ∧ !c ∨ !a ∧ !b ∧ c ∨ a ∧ !b ∧ !c ∨ a ∧ !b ∧ c"
	if dnf.String() != expected {
		t.Errorf("expected %s, got %s", expected, dnf)
	}
}

func TestSynthesizeConstants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boolfn.dnf")
	defer teardown()
	//
	dnf, err := Synthesize(table.FromString("0000"), []string{"a", "b"}, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(dnf) != 0 {
		t.Errorf("expected empty DNF for constant false, got %s", dnf)
	}
	dnf, err = Synthesize(table.FromString("1"), nil, true)
	if err != nil {
		t.Fatal(err)
	}
	if !dnf.Equal(boolfn.Tokens{boolfn.ONE}) {
		t.Errorf("expected 1 for constant true without variables, got %s", dnf)
	}
}

func TestSynthesizeShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boolfn.dnf")
	defer teardown()
	//
	_, err := Synthesize(table.FromString("010"), []string{"a", "b"}, false)
	if boolfn.KindOf(err) != boolfn.ShapeError {
		t.Errorf("expected shape error, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boolfn.dnf")
	defer teardown()
	//
	names := []string{"a", "b", "c"}
	for f := 1; f < 256; f++ { // every function of 3 variables except constant false
		tab := make(table.Table, 8)
		for i := range tab {
			tab[i] = f&(1<<uint(7-i)) != 0
		}
		for _, parens := range []bool{true, false} {
			dnf, err := Synthesize(tab, names, parens)
			if err != nil {
				t.Fatalf("function %s: %v", tab, err)
			}
			reparsed, err := table.Parse(dnf)
			if err != nil {
				t.Fatalf("function %s: cannot parse DNF %s: %v", tab, dnf, err)
			}
			// every minterm lists all variables in order, so the variable order is preserved
			if !reparsed.Equal(tab) {
				t.Errorf("round trip failed for %s: DNF %s yields %s", tab, dnf, reparsed)
			}
		}
	}
}

func TestRoundTripFromExpression(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boolfn.dnf")
	defer teardown()
	//
	// !(c ⊕ a) → b
	input := boolfn.Tokens{boolfn.NOT, boolfn.OPEN, c, boolfn.XOR, a, boolfn.CLOS, boolfn.IMPL, b}
	tab, err := table.Parse(input)
	if err != nil {
		t.Fatal(err)
	}
	names := boolfn.VariableNames(input)
	dnf, err := Synthesize(tab, names, true)
	if err != nil {
		t.Fatal(err)
	}
	if names2 := boolfn.VariableNames(dnf); len(names2) != 3 || names2[0] != "c" {
		t.Fatalf("expected DNF to preserve variable order [c a b], got %v", names2)
	}
	again, err := table.Parse(dnf)
	if err != nil {
		t.Fatal(err)
	}
	if !again.Equal(tab) {
		t.Errorf("expected %s, got %s", tab, again)
	}
}

func TestSynthesizeDuplicateNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boolfn.dnf")
	defer teardown()
	//
	_, err := Synthesize(table.FromString("0110"), []string{"a", "a"}, true)
	if boolfn.KindOf(err) != boolfn.ShapeError {
		t.Errorf("expected shape error for duplicate names, got %v", err)
	}
}
