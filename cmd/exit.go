package cmd

import "fmt"

const (
	// ExitCodeUpdatesNeeded tells automation that quickstart listings are stale.
	ExitCodeUpdatesNeeded = 2
)

// ExitError ends the command with a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d: %s", e.Code, e.Message)
}
