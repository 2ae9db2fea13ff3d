// Command thermo checks that temperature conversions survive a round trip.
//
// Usage:
//
//	thermo [-c config]... [flags]
//
// Flags:
//
//	-c, --config strings      Path(s) to config file/directory
//	-l, --log level           Log level
//	    --log-format string   Log format (text, json)
//	-q, --quiet               Only report failures
//	-h, --help                help for thermo
//	-v, --version             version for thermo
package main

import (
	"errors"
	"os"
)

// ExitError is an error that should cause the program to exit with the given code.
type ExitError struct {
	Err  error
	Code int
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)

	c, err := cmd.ExecuteC()
	if err == nil {
		return 0
	}

	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}

	c.PrintErrln("Error:", err)
	c.Usage()
	return 2
}
