package git

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommitLine(t *testing.T) {
	tests := []struct {
		line      string
		wantHash  string
		wantTitle string
	}{
		{"abc1234 Fix the thing", "abc1234", "Fix the thing"},
		{"abc1234 feat: add  double  spaces", "abc1234", "feat: add  double  spaces"},
		{"abc1234 ", "abc1234", ""},
		{"abc1234", "abc1234", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			c := ParseCommitLine(tt.line)
			assert.Equal(t, tt.wantHash, c.Hash)
			assert.Equal(t, tt.wantTitle, c.Title)
		})
	}
}

func TestCommit_StringRoundTrips(t *testing.T) {
	for _, line := range []string{"abc1234 Fix the thing", "abc1234 ", "0f0f0f0 a\tb"} {
		assert.Equal(t, line, ParseCommitLine(line).String())
	}
}

func TestCommandError(t *testing.T) {
	cause := &exec.ExitError{}
	err := &CommandError{
		Args:   []string{"git", "config", "user.email"},
		Stderr: "fatal: not a git repository\n",
		Err:    cause,
	}

	assert.Equal(t, "git config user.email", err.CommandLine())
	assert.Equal(t, "git command 'git config user.email' failed: fatal: not a git repository", err.Error())

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Same(t, cause, exitErr)
}

func TestCommandError_EmptyStderrFallsBackToCause(t *testing.T) {
	err := &CommandError{
		Args: []string{"git", "status"},
		Err:  errors.New("exec: \"git\": executable file not found in $PATH"),
	}

	assert.Contains(t, err.Error(), "executable file not found")
}
