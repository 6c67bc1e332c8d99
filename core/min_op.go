package core

import "math"

type MinOp struct {
	mode Mode
}

func NewMinOp() *MinOp {
	return &MinOp{
		mode: Minimum,
	}
}

func (op *MinOp) Mode() Mode {
	return op.mode
}

func (op *MinOp) Apply(retData, aggData *DataTable, insertValue float64) {
	retData.Count.Value = aggData.Count.Value + 1
	retData.Min.Value = math.Min(aggData.Min.Value, insertValue)
}

func (op *MinOp) Merge(retData *DataTable, values []DataTable) {
	for _, value := range values {
		retData.Count.Value += value.Count.Value
		retData.Min.Value = math.Min(retData.Min.Value, value.Min.Value)
	}
}

func (op *MinOp) Result(data *DataTable) float64 {
	if data.Empty() {
		return math.NaN()
	}
	return data.Min.Value
}
