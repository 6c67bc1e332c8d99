package core

import (
	"math"
	"strconv"
)

// MissingValue is printed for a row that has no numeric cell.
const MissingValue = "NaN"

func accumulate(op Op, cells []float64) *DataTable {
	data := NewDataTable()
	for _, cell := range cells {
		if math.IsNaN(cell) {
			continue
		}
		op.Apply(data, data, cell)
	}
	return data
}

// ReduceRow reduces the numeric cells of a row. NaN cells are missing and
// skipped; a row without numeric cells reduces to NaN.
func ReduceRow(op Op, cells []float64) float64 {
	return op.Result(accumulate(op, cells))
}

// ReduceRowChunked reduces a row in chunks of width cells and merges the
// partial tables. A width <= 0 reduces the row as a single chunk.
func ReduceRowChunked(op Op, cells []float64, width int) float64 {
	if width <= 0 || len(cells) <= width {
		return ReduceRow(op, cells)
	}
	partials := make([]DataTable, 0, (len(cells)+width-1)/width)
	for start := 0; start < len(cells); start += width {
		end := start + width
		if end > len(cells) {
			end = len(cells)
		}
		partials = append(partials, *accumulate(op, cells[start:end]))
	}
	merged := NewDataTable()
	op.Merge(merged, partials)
	return op.Result(merged)
}

func FormatValue(value float64) string {
	if math.IsNaN(value) {
		return MissingValue
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
