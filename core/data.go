package core

import "math"

type Scalar struct {
	Value float64
}

// DataTable accumulates the numeric cells of one row, or of a chunk of one.
type DataTable struct {
	Count *Scalar
	Sum   *Scalar
	Min   *Scalar
	Max   *Scalar
}

func NewDataTable() *DataTable {
	return &DataTable{
		Count: &Scalar{Value: 0.0},
		Sum:   &Scalar{Value: 0.0},
		Min:   &Scalar{Value: math.Inf(1)},
		Max:   &Scalar{Value: math.Inf(-1)},
	}
}

func (data *DataTable) Empty() bool {
	return data.Count.Value == 0
}
