package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"rowstat/core"
)

const (
	ExitInput = 1
	ExitUsage = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

type options struct {
	modes    map[string]*bool
	logLevel string
}

// NewCommand builds the root command. Results go to stdout, diagnostics to
// stderr.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{modes: make(map[string]*bool)}

	cmd := &cobra.Command{
		Use:   "rowstat (--min | --mean | --max) [FILE.csv ...]",
		Short: "Print a per-row minimum, mean or maximum of CSV files",
		Long: `rowstat reads each CSV file in turn, skips its header line and prints one
value per data row: the minimum, mean or maximum of the row's numeric cells.
Cells that are empty or not numeric are ignored; a row without any numeric
cell prints NaN. Output for all files is concatenated in argument order.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return opts.run(stdout, stderr, args)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	})

	flags := cmd.Flags()
	names := make([]string, 0, len(core.Modes()))
	for _, mode := range core.Modes() {
		name := mode.String()
		opts.modes[name] = flags.Bool(name, false, fmt.Sprintf("print the %s of each row", name))
		names = append(names, name)
	}
	flags.StringVar(&opts.logLevel, "log-level", "warn", "diagnostic log level: debug, info, warn or error")
	cmd.MarkFlagsMutuallyExclusive(names...)
	cmd.MarkFlagsOneRequired(names...)

	return cmd
}

// Execute runs the command against args and returns an *ExitError on failure.
func Execute(stdout, stderr io.Writer, args []string) error {
	cmd := NewCommand(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return &ExitError{Code: ExitUsage, Message: err.Error()}
}

func (opts *options) selectedMode() (core.Mode, error) {
	for _, mode := range core.Modes() {
		if set := opts.modes[mode.String()]; set != nil && *set {
			return mode, nil
		}
	}
	return 0, core.ErrUnknownMode
}

func (opts *options) run(stdout, stderr io.Writer, paths []string) error {
	mode, err := opts.selectedMode()
	if err != nil {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	logger, err := NewLogger(stderr, opts.logLevel)
	if err != nil {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	defer logger.Sync() //nolint:errcheck

	reducer := core.NewReducer(core.GetOpFromMode(mode), stdout, &core.ReducerConfig{
		Logger: logger,
	})
	if err := reducer.Run(paths); err != nil {
		logger.Debug("run aborted", zap.Error(err))
		return &ExitError{Code: ExitInput, Message: err.Error()}
	}
	return nil
}

// NewLogger returns a console logger on w filtered at level.
func NewLogger(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log-level %q: must be debug, info, warn or error", level)
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		lvl,
	)
	return zap.New(logCore), nil
}
