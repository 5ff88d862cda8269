package logging

import "context"

type contextKey string

const (
	repoDirKey contextKey = "repo_dir"
	commandKey contextKey = "command"
)

// WithRepoDir adds the repository working directory to the context.
func WithRepoDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, repoDirKey, dir)
}

// WithCommand adds the name of the CLI command being run to the context.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}

// GetRepoDir retrieves the repository directory from the context.
// Returns empty string if not present.
func GetRepoDir(ctx context.Context) string {
	if dir, ok := ctx.Value(repoDirKey).(string); ok {
		return dir
	}
	return ""
}

// GetCommand retrieves the command name from the context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if name, ok := ctx.Value(commandKey).(string); ok {
		return name
	}
	return ""
}
