// Package dataset reads a whole CSV file into memory and exposes it as a
// matrix.Matrix, mirroring a hand-rolled byte-walk parser rather than a
// general-purpose CSV reader: no quoting, no escaping, just comma/CRLF/LF
// splitting, which is all the ingestion format needs.
package dataset

import (
	"os"
	"strconv"

	"github.com/pkg/errors"

	"symreg/internal/matrix"
)

// readRow splits the single row starting at pos, returning the fields and the
// offset of the next row's first byte. ok is false once pos has run past the
// end of data.
func readRow(data []byte, pos int) (fields []string, next int, ok bool) {
	if pos >= len(data) {
		return nil, pos, false
	}

	i := pos
	fieldStart := pos

	for {
		if i >= len(data) {
			fields = append(fields, string(data[fieldStart:i]))
			return fields, i, true
		}

		switch data[i] {
		case '\n':
			fields = append(fields, string(data[fieldStart:i]))
			return fields, i + 1, true
		case '\r':
			fields = append(fields, string(data[fieldStart:i]))
			next := i + 1
			if next < len(data) && data[next] == '\n' {
				next++
			}
			return fields, next, true
		case ',':
			fields = append(fields, string(data[fieldStart:i]))
			fieldStart = i + 1
		}

		i++
	}
}

// columns counts the fields in the first row by scanning up to the first
// line break.
func columns(data []byte) int {
	n := 1
	for _, b := range data {
		switch b {
		case '\n', '\r':
			return n
		case ',':
			n++
		}
	}
	return n
}

// Strings reads path in full and returns every row (header included) as a
// string matrix.
func Strings(path string) (*matrix.Matrix[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: reading %s", path)
	}

	cols := columns(data)
	m := matrix.New[string](cols)

	for pos, ok := 0, true; ok; {
		var row []string
		row, pos, ok = readRow(data, pos)
		if !ok {
			break
		}
		if len(row) != cols {
			return nil, errors.Errorf("dataset: %s: row has %d fields, want %d", path, len(row), cols)
		}
		m.PushRow(row)
	}

	return m, nil
}

// Categorize coerces a string matrix to float64: a cell that parses as a
// float keeps its numeric value; a non-numeric cell is replaced by an
// integer code, assigned in first-seen order independently per column.
func Categorize(in *matrix.Matrix[string]) *matrix.Matrix[float64] {
	rows, cols := in.Shape()
	out := matrix.New[float64](cols)

	codes := make([]map[string]float64, cols)
	for c := range codes {
		codes[c] = make(map[string]float64)
	}

	for r := 0; r < rows; r++ {
		row, _ := in.Row(r)
		parsed := make([]float64, cols)
		for c, cell := range row {
			if x, err := strconv.ParseFloat(cell, 64); err == nil {
				parsed[c] = x
				continue
			}
			m := codes[c]
			code, seen := m[cell]
			if !seen {
				code = float64(len(m))
				m[cell] = code
			}
			parsed[c] = code
		}
		out.PushRow(parsed)
	}

	return out
}

// Load reads path, drops its header row, coerces every remaining cell to
// float64 (categorical columns become integer codes), and splits the last
// column off as the target vector y.
func Load(path string) (x *matrix.Matrix[float64], y []float64, err error) {
	strs, err := Strings(path)
	if err != nil {
		return nil, nil, err
	}
	strs.PopHead()

	coerced := Categorize(strs)
	x, y = coerced.SplitRight()
	return x, y, nil
}
