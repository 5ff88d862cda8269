package doctor

import (
	"context"
	"os/exec"
)

// lookPathFunc is the function used to find executables on PATH.
// Package-level variable to allow test overrides.
var lookPathFunc = exec.LookPath

// ToolsCheck verifies that the configured git executable is available.
type ToolsCheck struct {
	gitPath string
}

// NewToolsCheck creates a new tools check for the given git path.
func NewToolsCheck(gitPath string) *ToolsCheck {
	return &ToolsCheck{gitPath: gitPath}
}

func (c *ToolsCheck) Name() string {
	return "Tools"
}

func (c *ToolsCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	path, err := lookPathFunc(c.gitPath)
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "git",
			Status: StatusFail,
			Detail: c.gitPath + " not found on PATH",
		})
		return result
	}

	result.Items = append(result.Items, CheckItem{
		Label:  "git",
		Status: StatusPass,
		Detail: path,
	})
	return result
}
