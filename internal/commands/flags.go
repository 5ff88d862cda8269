package commands

import (
	"context"
	"os"
	"path/filepath"

	"github.com/hay-kot/gitquery/internal/core/config"
	"github.com/hay-kot/gitquery/internal/core/git"
	"github.com/hay-kot/gitquery/internal/core/logging"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Dir        string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Git answers repository queries for all commands
	Git git.Git
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "gitquery", "config.yaml")
}

// logContext tags ctx with the command name and target directory for logging.
func (f *Flags) logContext(ctx context.Context, command string) context.Context {
	ctx = logging.WithCommand(ctx, command)
	if f.Dir != "" {
		ctx = logging.WithRepoDir(ctx, f.Dir)
	}
	return ctx
}
