package config

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/hay-kot/criterio"
)

// lookPathFunc resolves executables on PATH. Overridden in tests.
var lookPathFunc = exec.LookPath

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// ValidateDeep performs Validate and then checks file accessibility: the
// config path must be a file when present and git_path must resolve to an
// executable. Field errors are returned as criterio.FieldErrors.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("git_path", c.GitPath, gitExecutableExists),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.Doctor.RequireSigning && !c.Doctor.EmailRequired() {
		warnings = append(warnings, ValidationWarning{
			Category: "Doctor",
			Message:  "require_signing is set but require_email is disabled; signed commits still need an identity",
		})
	}

	if c.LogLevel == "debug" {
		warnings = append(warnings, ValidationWarning{
			Category: "Logging",
			Message:  "debug logging records the stderr of every failed git query",
		})
	}

	return warnings
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// gitExecutableExists validates that the git path is executable.
func gitExecutableExists(path string) error {
	if path == "" {
		return nil
	}
	if _, err := lookPathFunc(path); err != nil {
		return fmt.Errorf("executable not found: %s", path)
	}
	return nil
}
