// Package table loads a CSV file into a grid of float64 cells. The first
// record is the header; every cell that does not parse as a number is NaN.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

var (
	ErrEmptyFile     = errors.New("empty file")
	ErrTooManyFields = errors.New("too many fields")
)

type Table struct {
	columns []string
	cells   [][]float64 // column-major
	nrows   int
}

func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func Read(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, err
	}
	columns := make([]string, len(header))
	copy(columns, header)

	// Frame column names are positional; the file's header may repeat or
	// leave names empty.
	names := make([]string, len(header))
	for j := range names {
		names[j] = "c" + strconv.Itoa(j)
	}
	records := [][]string{names}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) > len(header) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: expected %d fields, saw %d: %w",
				line, len(header), len(record), ErrTooManyFields)
		}
		for j := range record {
			record[j] = strings.TrimSpace(record[j])
		}
		for len(record) < len(header) {
			record = append(record, "")
		}
		records = append(records, record)
	}
	if len(records) == 1 {
		return &Table{columns: columns, cells: make([][]float64, len(columns))}, nil
	}

	frame := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float))
	if frame.Err != nil {
		return nil, frame.Err
	}

	cells := make([][]float64, 0, len(names))
	for _, name := range names {
		cells = append(cells, frame.Col(name).Float())
	}
	return &Table{
		columns: columns,
		cells:   cells,
		nrows:   frame.Nrow(),
	}, nil
}

func (t *Table) NRows() int {
	return t.nrows
}

func (t *Table) NCols() int {
	return len(t.columns)
}

// Columns returns the header names as they appear in the file.
func (t *Table) Columns() []string {
	return t.columns
}

func (t *Table) Row(i int) []float64 {
	row := make([]float64, len(t.cells))
	for j, col := range t.cells {
		row[j] = col[i]
	}
	return row
}
