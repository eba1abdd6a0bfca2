package cli

import "fmt"

// ExitFailure is the exit code of a check with failing files or a refused
// overwrite.
const ExitFailure = 1

// CommandError ends a command whose report was already printed. Main exits
// with its code without printing anything else.
type CommandError struct {
	code   int
	reason string
}

func failedFiles(failed, total int) *CommandError {
	return &CommandError{
		code:   ExitFailure,
		reason: fmt.Sprintf("%d of %d file(s) failed validation", failed, total),
	}
}

func notOverwritten(path string) *CommandError {
	return &CommandError{
		code:   ExitFailure,
		reason: fmt.Sprintf("%s already exists, use --force to overwrite", path),
	}
}

func (e *CommandError) Error() string {
	return e.reason
}

// ExitCode returns the process exit code.
func (e *CommandError) ExitCode() int {
	return e.code
}
