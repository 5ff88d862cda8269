package git

import (
	"fmt"
	"strings"
)

// CommandError is returned when a git invocation exits non-zero or cannot be
// started. It is never mutated after construction.
type CommandError struct {
	// Args is the executed argument vector. Args[0] is the git invocation
	// name, followed by the caller's arguments in order.
	Args []string
	// Stderr is the raw captured standard error, untrimmed.
	Stderr string
	// Err is the underlying process error.
	Err error
}

// CommandLine returns Args joined by single spaces.
func (e *CommandError) CommandLine() string {
	return strings.Join(e.Args, " ")
}

func (e *CommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("git command '%s' failed: %s", e.CommandLine(), msg)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
