package core

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMode = errors.New("unknown aggregation mode")

// Mode selects the statistic a row is reduced to. It is chosen once per run.
type Mode int

const (
	Minimum Mode = iota
	Mean
	Maximum
)

func Modes() []Mode {
	return []Mode{Minimum, Mean, Maximum}
}

func (mode Mode) String() string {
	switch mode {
	case Minimum:
		return "min"
	case Mean:
		return "mean"
	case Maximum:
		return "max"
	}
	return fmt.Sprintf("Mode(%d)", int(mode))
}

// ParseMode maps a selector such as "mean" or "--mean" to its Mode.
func ParseMode(name string) (Mode, error) {
	switch strings.TrimPrefix(name, "--") {
	case "min":
		return Minimum, nil
	case "mean":
		return Mean, nil
	case "max":
		return Maximum, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}
