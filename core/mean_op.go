package core

import "math"

// MeanOp keeps a running sum and count; the mean is taken only in Result so
// partial tables merge exactly.
type MeanOp struct {
	mode Mode
}

func NewMeanOp() *MeanOp {
	return &MeanOp{
		mode: Mean,
	}
}

func (op *MeanOp) Mode() Mode {
	return op.mode
}

func (op *MeanOp) Apply(retData, aggData *DataTable, insertValue float64) {
	retData.Count.Value = aggData.Count.Value + 1
	retData.Sum.Value = aggData.Sum.Value + insertValue
}

func (op *MeanOp) Merge(retData *DataTable, values []DataTable) {
	for _, value := range values {
		retData.Count.Value += value.Count.Value
		retData.Sum.Value += value.Sum.Value
	}
}

func (op *MeanOp) Result(data *DataTable) float64 {
	if data.Empty() {
		return math.NaN()
	}
	return data.Sum.Value / data.Count.Value
}
