package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"rowstat/cli"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "rowstat:", exitErr.Message)
			if exitErr.Code == cli.ExitUsage {
				fmt.Fprintln(os.Stderr, "Run 'rowstat --help' for usage.")
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "rowstat:", err)
		os.Exit(cli.ExitInput)
	}
}

func run(stdout, stderr io.Writer, args []string) error {
	return cli.Execute(stdout, stderr, args)
}
