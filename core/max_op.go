package core

import "math"

type MaxOp struct {
	mode Mode
}

func NewMaxOp() *MaxOp {
	return &MaxOp{
		mode: Maximum,
	}
}

func (op *MaxOp) Mode() Mode {
	return op.mode
}

func (op *MaxOp) Apply(retData, aggData *DataTable, insertValue float64) {
	retData.Count.Value = aggData.Count.Value + 1
	retData.Max.Value = math.Max(aggData.Max.Value, insertValue)
}

func (op *MaxOp) Merge(retData *DataTable, values []DataTable) {
	for _, value := range values {
		retData.Count.Value += value.Count.Value
		retData.Max.Value = math.Max(retData.Max.Value, value.Max.Value)
	}
}

func (op *MaxOp) Result(data *DataTable) float64 {
	if data.Empty() {
		return math.NaN()
	}
	return data.Max.Value
}
