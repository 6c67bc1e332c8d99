package table

import (
	"errors"
	"io/fs"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowstat/utils"
)

func TestRead(t *testing.T) {
	tbl, err := Read(strings.NewReader("x,y,z\n1,2,3\n4,4,4\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.NRows())
	assert.Equal(t, 3, tbl.NCols())
	assert.Equal(t, []string{"x", "y", "z"}, tbl.Columns())
	assert.Equal(t, []float64{1, 2, 3}, tbl.Row(0))
	assert.Equal(t, []float64{4, 4, 4}, tbl.Row(1))
}

func TestRead_MissingAndNonNumeric(t *testing.T) {
	tbl, err := Read(strings.NewReader("a,b,c,d\n1.5,,NA,abc\n -2 ,1e3,NaN,+16\n7\n"))
	require.NoError(t, err)
	require.Equal(t, 3, tbl.NRows())

	nan := math.NaN()
	want := [][]float64{
		{1.5, nan, nan, nan},
		{-2, 1000, nan, 16},
		{7, nan, nan, nan},
	}
	got := make([][]float64, tbl.NRows())
	for i := range got {
		got[i] = tbl.Row(i)
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_Infinities(t *testing.T) {
	tbl, err := Read(strings.NewReader("a,b,c\ninf,-inf,Infinity\n"))
	require.NoError(t, err)
	require.Equal(t, 1, tbl.NRows())

	row := tbl.Row(0)
	assert.True(t, math.IsInf(row[0], 1))
	assert.True(t, math.IsInf(row[1], -1))
	assert.True(t, math.IsInf(row[2], 1))
}

func TestRead_HeaderOnly(t *testing.T) {
	tbl, err := Read(strings.NewReader("a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.NRows())
	assert.Equal(t, 2, tbl.NCols())
}

func TestRead_BlankLinesSkipped(t *testing.T) {
	tbl, err := Read(strings.NewReader("a,b\n\n1,2\n\n3,4\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.NRows())
	assert.Equal(t, []float64{3, 4}, tbl.Row(1))
}

func TestRead_DuplicateHeaders(t *testing.T) {
	tbl, err := Read(strings.NewReader("a,a,\n1,2,3\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a", ""}, tbl.Columns())
	assert.Equal(t, []float64{1, 2, 3}, tbl.Row(0))
}

func TestRead_Empty(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestRead_TooManyFields(t *testing.T) {
	_, err := Read(strings.NewReader("a,b\n1,2\n1,2,3\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooManyFields))
	assert.Contains(t, err.Error(), "line 3")
}

func TestRead_BadQuoting(t *testing.T) {
	_, err := Read(strings.NewReader("a,b\n1,\"2\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := utils.WriteCSV(t, "data.csv", "p,q\n10,20\n")

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.NRows())
	assert.Equal(t, []float64{10, 20}, tbl.Row(0))
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoad_ErrorNamesPath(t *testing.T) {
	path := utils.WriteCSV(t, "empty.csv", "")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrEmptyFile)
	assert.Contains(t, err.Error(), path)
}
