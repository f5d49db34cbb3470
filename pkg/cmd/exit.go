package cmd

import "errors"

// Exit codes reported by the CLI.
const (
	// ExitCodeClean means every unit decoded and no problems were found.
	ExitCodeClean = 0
	// ExitCodeProblems means at least one ordering problem was reported.
	ExitCodeProblems = 1
	// ExitCodeError means an operational failure: unreadable path,
	// undecodable unit, bad configuration.
	ExitCodeError = 2
)

// ExitError carries a process exit code alongside its message.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitCodeClean
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCodeError
}
