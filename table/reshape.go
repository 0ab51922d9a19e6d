package table

import (
	"github.com/npillmayer/boolfn"
)

// Reshaping of externally supplied truth-table data.
//
// External tables come as flat sequences of rows, each row consisting of
// inLen input bits followed by outLen output bits:
//
//    a b | and
//    0 0 |  0
//    1 0 |  0
//    1 1 |  1
//    0 1 |  0      =>  flat data 000 100 111 010  =>  [0001]
//
// Rows need not be in order. The reshaping functions return one Table per output.

// Full reshapes a complete table: data must contain exactly 2^inLen rows.
func Full(inLen, outLen int, data []bool) ([]Table, error) {
	if err := checkShape(inLen, outLen); err != nil {
		return nil, err
	}
	if len(data) != Rows(inLen)*(inLen+outLen) {
		return nil, boolfn.Shape("incorrect table shape: expected %d rows of %d bits, have %d bits",
			Rows(inLen), inLen+outLen, len(data))
	}
	return Fill(inLen, outLen, data, false)
}

// Fill reshapes a partial table. Data may contain any number of rows; outputs
// for input combinations not present in data are set to fill. If a combination
// occurs more than once, the last row wins.
func Fill(inLen, outLen int, data []bool, fill bool) ([]Table, error) {
	if err := checkShape(inLen, outLen); err != nil {
		return nil, err
	}
	width := inLen + outLen
	if len(data)%width != 0 {
		return nil, boolfn.Shape("incorrect table shape: %d bits do not form rows of %d bits", len(data), width)
	}
	result := make([]Table, outLen)
	for i := range result {
		result[i] = make(Table, Rows(inLen))
		for j := range result[i] {
			result[i][j] = fill
		}
	}
	for r := 0; r < len(data); r += width {
		row := data[r : r+width]
		index := Index(row[:inLen])
		for i, v := range row[inLen:] {
			result[i][index] = v
		}
	}
	tracer().Debugf("reshaped %d rows into %d tables", len(data)/width, outLen)
	return result, nil
}

// Packed reshapes output-only data, i.e. tables without input columns. Data
// holds 2^inLen values for each of outLen outputs. If vertical is set, the
// outputs are stored one after the other (all of output 0, then all of output 1, …),
// otherwise they are interleaved row by row.
func Packed(inLen, outLen int, data []bool, vertical bool) ([]Table, error) {
	if err := checkShape(inLen, outLen); err != nil {
		return nil, err
	}
	rows := Rows(inLen)
	if len(data) != rows*outLen {
		return nil, boolfn.Shape("incorrect table shape: expected %d values, have %d", rows*outLen, len(data))
	}
	result := make([]Table, outLen)
	for i := range result {
		result[i] = make(Table, 0, rows)
	}
	if vertical {
		for i := range result {
			result[i] = append(result[i], data[i*rows:(i+1)*rows]...)
		}
		return result, nil
	}
	for j, v := range data {
		result[j%outLen] = append(result[j%outLen], v)
	}
	return result, nil
}

func checkShape(inLen, outLen int) error {
	if inLen < 0 || outLen < 1 {
		return boolfn.Shape("incorrect table shape: %d inputs, %d outputs", inLen, outLen)
	}
	return tooManyVariables(inLen)
}
