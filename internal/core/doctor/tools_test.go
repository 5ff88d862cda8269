package doctor

import (
	"context"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolsCheck_GitPresent(t *testing.T) {
	orig := lookPathFunc
	t.Cleanup(func() { lookPathFunc = orig })

	lookPathFunc = func(file string) (string, error) {
		return "/usr/bin/" + file, nil
	}

	result := NewToolsCheck("git").Run(context.Background())

	assert.Equal(t, "Tools", result.Name)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "git", result.Items[0].Label)
	assert.Equal(t, StatusPass, result.Items[0].Status)
	assert.Equal(t, "/usr/bin/git", result.Items[0].Detail)
}

func TestToolsCheck_GitMissing(t *testing.T) {
	orig := lookPathFunc
	t.Cleanup(func() { lookPathFunc = orig })

	var looked string
	lookPathFunc = func(file string) (string, error) {
		looked = file
		return "", &exec.Error{Name: file, Err: fmt.Errorf("not found")}
	}

	result := NewToolsCheck("/opt/git/bin/git").Run(context.Background())

	assert.Equal(t, "/opt/git/bin/git", looked)
	require.Len(t, result.Items, 1)
	assert.Equal(t, StatusFail, result.Items[0].Status)
	assert.Contains(t, result.Items[0].Detail, "/opt/git/bin/git not found")
}
