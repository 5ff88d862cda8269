// Package executil provides process execution utilities.
package executil

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// Result holds the fully buffered output streams of a finished command.
type Result struct {
	Stdout []byte
	Stderr []byte
}

// Executor runs external commands to completion.
type Executor interface {
	// Run executes a command and returns its captured stdout and stderr.
	Run(ctx context.Context, cmd string, args ...string) (Result, error)
	// RunDir executes a command in a specific directory (empty means inherit cwd).
	RunDir(ctx context.Context, dir, cmd string, args ...string) (Result, error)
}

// RealExecutor calls actual commands.
type RealExecutor struct{}

// Run executes a command and returns its captured stdout and stderr.
func (e *RealExecutor) Run(ctx context.Context, cmd string, args ...string) (Result, error) {
	return e.RunDir(ctx, "", cmd, args...)
}

// RunDir executes a command in a specific directory. The Result is populated
// even when the command fails so callers can inspect stderr. A non-zero exit
// wraps *exec.ExitError; a failure to start wraps *exec.Error or the
// underlying os error.
func (e *RealExecutor) RunDir(ctx context.Context, dir, cmd string, args ...string) (Result, error) {
	c := exec.CommandContext(ctx, cmd, args...)
	if dir != "" {
		c.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err != nil {
		if dir != "" {
			return res, fmt.Errorf("exec %s in %s: %w", cmd, dir, err)
		}
		return res, fmt.Errorf("exec %s: %w", cmd, err)
	}
	return res, nil
}
