package logging

import (
	"context"
	"testing"
)

func TestWithRepoDir(t *testing.T) {
	ctx := WithRepoDir(context.Background(), "/src/project")

	if got := GetRepoDir(ctx); got != "/src/project" {
		t.Errorf("GetRepoDir() = %q, want %q", got, "/src/project")
	}
}

func TestWithCommand(t *testing.T) {
	ctx := WithCommand(context.Background(), "commits")

	if got := GetCommand(ctx); got != "commits" {
		t.Errorf("GetCommand() = %q, want %q", got, "commits")
	}
}

func TestGetRepoDir_NotPresent(t *testing.T) {
	if got := GetRepoDir(context.Background()); got != "" {
		t.Errorf("GetRepoDir() = %q, want empty string", got)
	}
}

func TestGetCommand_NotPresent(t *testing.T) {
	if got := GetCommand(context.Background()); got != "" {
		t.Errorf("GetCommand() = %q, want empty string", got)
	}
}
