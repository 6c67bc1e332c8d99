package core

// Op folds cell values into a DataTable and reads the row value back out.
// Result returns NaN for a table that has not seen any value.
type Op interface {
	Mode() Mode
	Apply(*DataTable, *DataTable, float64)
	Merge(*DataTable, []DataTable)
	Result(*DataTable) float64
}
