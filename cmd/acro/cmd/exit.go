package cmd

import (
	"errors"
	"fmt"
)

// exitError is returned by commands that have already reported their
// outcome and only need to set the process exit code.
// 0=found, 1=not found or unhealthy.
type exitError struct{ code int }

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// ExitCode extracts the exit code from an exitError.
// Returns -1 if the error is not an exitError.
func ExitCode(err error) int {
	var ee exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return -1
}
