package table

// Next advances an assignment to its successor in enumeration order, treating
// the last cell as the least significant bit:
//
//    000 → 001 → 010 → … → 111 → 000
//
// Next returns false exactly once per cycle, when the carry runs past the first
// cell, i.e. on the transition from all-true back to all-false. An empty
// assignment has no successor.
func Next(values []bool) bool {
	for i := len(values) - 1; i >= 0; i-- {
		if !values[i] {
			values[i] = true
			return true
		}
		values[i] = false
	}
	return false
}

// Assignment returns the values of assignment number row for n variables,
// first variable as most significant bit.
func Assignment(row int, n int) []bool {
	values := make([]bool, n)
	for i := n - 1; i >= 0; i-- {
		values[i] = row&1 != 0
		row >>= 1
	}
	return values
}

// Index is the inverse of Assignment.
func Index(values []bool) int {
	index := 0
	for _, v := range values {
		index <<= 1
		if v {
			index |= 1
		}
	}
	return index
}
