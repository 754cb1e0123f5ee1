package cli

import (
	"fmt"
	"io"
)

// Exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is an error carrying the exit code the program should
// terminate with
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError
func (e *ExitError) Error() string {
	return e.Message
}

// Usagef returns an ExitError with code ExitUsage
func Usagef(format string, args ...interface{}) *ExitError {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

// Exit prints err to w and returns the exit code for it. A nil err
// returns ExitOK; an *ExitError returns its own code, printing its
// message when it has one.
func Exit(w io.Writer, err error) int {
	if err == nil {
		return ExitOK
	}
	if exitErr, ok := err.(*ExitError); ok {
		if exitErr.Message != "" {
			fmt.Fprintln(w, exitErr.Message)
		}
		return exitErr.Code
	}
	fmt.Fprintln(w, err)
	return ExitFailure
}
