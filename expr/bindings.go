package expr

import (
	"fmt"
	"strings"

	"github.com/npillmayer/boolfn"
)

// Bindings is a table of assignment cells for the variables of an expression.
//
// Each variable name is bound to exactly one cell. Cells are stored in a flat
// array and referenced by index; tree leaves hold the index, not a copy of the
// value. Updating a cell therefore updates every occurence of the variable.
// The cell order is the order of the variable names given to NewBindings.
type Bindings struct {
	names  []string
	slots  map[string]int
	Values []bool // cells, index-aligned with Names()
}

// NewBindings creates a table with one cell per name, all set to false.
// Duplicate names share a cell.
func NewBindings(names []string) *Bindings {
	b := &Bindings{
		slots: make(map[string]int, len(names)),
	}
	for _, name := range names {
		b.define(name)
	}
	return b
}

func (b *Bindings) define(name string) int {
	if slot, found := b.slots[name]; found {
		return slot
	}
	slot := len(b.Values)
	b.names = append(b.names, name)
	b.Values = append(b.Values, false)
	b.slots[name] = slot
	tracer().P("var", name).Debugf("bound to cell %d", slot)
	return slot
}

// Resolve finds the cell of a variable. Returns the cell index and a flag,
// signalling whether the variable is bound at all.
func (b *Bindings) Resolve(name string) (int, bool) {
	slot, found := b.slots[name]
	return slot, found
}

// Names returns the bound names in cell order.
func (b *Bindings) Names() []string {
	return b.names
}

// Size counts the cells.
func (b *Bindings) Size() int {
	return len(b.Values)
}

// Set assigns a value to a variable. It will return an error of kind
// boolfn.EvaluationError if the variable is not bound.
func (b *Bindings) Set(name string, value bool) error {
	slot, found := b.slots[name]
	if !found {
		return boolfn.Evaluation("variable %q is not bound", name)
	}
	b.Values[slot] = value
	return nil
}

// Get returns the current value of a variable, and false for unbound ones.
func (b *Bindings) Get(name string) bool {
	if slot, found := b.slots[name]; found {
		return b.Values[slot]
	}
	return false
}

// Reset sets every cell to false.
func (b *Bindings) Reset() {
	for i := range b.Values {
		b.Values[i] = false
	}
}

// Prettyfied Stringer.
func (b *Bindings) String() string {
	var sb strings.Builder
	sb.WriteString("<bindings")
	for i, name := range b.names {
		fmt.Fprintf(&sb, " %s=%d", name, bit(b.Values[i]))
	}
	sb.WriteString(">")
	return sb.String()
}

func bit(v bool) int {
	if v {
		return 1
	}
	return 0
}
