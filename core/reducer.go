package core

import (
	"bufio"
	"io"

	"go.uber.org/zap"

	"rowstat/table"
)

type ReducerConfig struct {
	Logger *zap.Logger
}

func DefaultReducerConfig() *ReducerConfig {
	return &ReducerConfig{
		Logger: zap.NewNop(),
	}
}

// Reducer prints one row value per data row for each file it is given.
// Files are handled in order and the first failure ends the run; lines
// already written for earlier files are kept.
type Reducer struct {
	op     Op
	out    io.Writer
	config *ReducerConfig
}

func NewReducer(op Op, out io.Writer, config *ReducerConfig) *Reducer {
	cfg := DefaultReducerConfig()
	if config != nil && config.Logger != nil {
		cfg.Logger = config.Logger
	}
	return &Reducer{
		op:     op,
		out:    out,
		config: cfg,
	}
}

func (reducer *Reducer) Run(paths []string) error {
	reducer.config.Logger.Debug("run started",
		zap.Stringer("mode", reducer.op.Mode()),
		zap.Int("files", len(paths)))
	for _, path := range paths {
		if err := reducer.ReduceFile(path); err != nil {
			return err
		}
	}
	return nil
}

func (reducer *Reducer) ReduceFile(path string) error {
	t, err := table.Load(path)
	if err != nil {
		return err
	}
	reducer.config.Logger.Debug("table loaded",
		zap.String("path", path),
		zap.Int("rows", t.NRows()),
		zap.Strings("columns", t.Columns()))

	w := bufio.NewWriter(reducer.out)
	for i := 0; i < t.NRows(); i++ {
		value := ReduceRow(reducer.op, t.Row(i))
		if _, err := w.WriteString(FormatValue(value) + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
