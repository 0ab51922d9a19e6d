package boolfn

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// VariableNames returns the names of all variables occuring in an expression,
// de-duplicated and in order of first occurence.
//
//    a & b | a  =>  [a b]
//
// This order fixes the meaning of the bit positions of an assignment (index 0 is
// the most significant bit) and the column order of printed tables.
func VariableNames(ts Tokens) []string {
	set := linkedhashset.New()
	for _, t := range ts {
		if t.Kind == Var {
			set.Add(t.Name)
		}
	}
	names := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		names = append(names, v.(string))
	}
	return names
}
