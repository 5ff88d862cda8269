package executil

import (
	"context"
	"strings"
	"sync"
)

// RecordedCommand captures a command that was executed.
type RecordedCommand struct {
	Dir  string
	Cmd  string
	Args []string
}

// Line returns the command and its arguments joined by spaces.
func (r RecordedCommand) Line() string {
	return strings.Join(append([]string{r.Cmd}, r.Args...), " ")
}

// RecordingExecutor captures commands for testing.
// Configure Outputs, Stderr and Errors to control return values.
//
// Keys are matched against the full command line first (e.g.
// "git config user.email") and then against the bare command name
// (e.g. "git").
type RecordingExecutor struct {
	mu       sync.Mutex
	Commands []RecordedCommand

	// Outputs maps a command to its stdout.
	Outputs map[string][]byte

	// Stderr maps a command to its stderr.
	Stderr map[string][]byte

	// Errors maps a command to its error.
	Errors map[string]error
}

// Run records the command and returns configured output/error.
func (e *RecordingExecutor) Run(ctx context.Context, cmd string, args ...string) (Result, error) {
	return e.record("", cmd, args...)
}

// RunDir records the command with directory and returns configured output/error.
func (e *RecordingExecutor) RunDir(ctx context.Context, dir, cmd string, args ...string) (Result, error) {
	return e.record(dir, cmd, args...)
}

func (e *RecordingExecutor) record(dir, cmd string, args ...string) (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rc := RecordedCommand{
		Dir:  dir,
		Cmd:  cmd,
		Args: args,
	}
	e.Commands = append(e.Commands, rc)

	line := rc.Line()
	return Result{
		Stdout: lookup(e.Outputs, line, cmd),
		Stderr: lookup(e.Stderr, line, cmd),
	}, lookup(e.Errors, line, cmd)
}

func lookup[T any](m map[string]T, line, cmd string) T {
	var zero T
	if m == nil {
		return zero
	}
	if v, ok := m[line]; ok {
		return v
	}
	return m[cmd]
}

// Last returns the most recently recorded command.
func (e *RecordingExecutor) Last() (RecordedCommand, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.Commands) == 0 {
		return RecordedCommand{}, false
	}
	return e.Commands[len(e.Commands)-1], true
}

// Reset clears recorded commands.
func (e *RecordingExecutor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Commands = nil
}
