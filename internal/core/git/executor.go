package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hay-kot/gitquery/pkg/executil"
)

// Executor implements Git using the git command-line tool. It holds only
// configuration, so a single Executor may be shared between goroutines.
type Executor struct {
	gitPath string
	exec    executil.Executor
	diag    io.Writer
	log     zerolog.Logger
}

var _ Git = (*Executor)(nil)

// NewExecutor creates a new git executor with the specified git binary path.
// diag receives the diagnostics printed by CommitsList; nil means os.Stderr.
func NewExecutor(gitPath string, exec executil.Executor, diag io.Writer, logger zerolog.Logger) *Executor {
	if diag == nil {
		diag = os.Stderr
	}
	return &Executor{
		gitPath: gitPath,
		exec:    exec,
		diag:    diag,
		log:     logger,
	}
}

// Run executes git with args in dir and returns its stdout with a single
// trailing newline removed. Any failure, including git not being found, is
// returned as a *CommandError.
func (e *Executor) Run(ctx context.Context, dir string, args ...string) (string, error) {
	res, err := e.exec.RunDir(ctx, dir, e.gitPath, args...)
	if err != nil {
		return "", &CommandError{
			Args:   append([]string{e.gitPath}, args...),
			Stderr: string(res.Stderr),
			Err:    err,
		}
	}
	return strings.TrimSuffix(string(res.Stdout), "\n"), nil
}

func (e *Executor) RepoRoot(ctx context.Context, dir string) string {
	root, err := e.Run(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		e.absorb(ctx, err)
		return ""
	}
	return root
}

func (e *Executor) CurrentBranch(ctx context.Context, dir string) string {
	branch, err := e.Run(ctx, dir, "symbolic-ref", "--short", "HEAD")
	if err != nil {
		e.absorb(ctx, err)
		return ""
	}
	return branch
}

func (e *Executor) IsValidCommit(ctx context.Context, dir, ref string) bool {
	return e.verify(ctx, dir, ref+"^{commit}")
}

func (e *Executor) IsValidObject(ctx context.Context, dir, ref string) bool {
	return e.verify(ctx, dir, ref+"^{object}")
}

func (e *Executor) verify(ctx context.Context, dir, rev string) bool {
	if _, err := e.Run(ctx, dir, "rev-parse", "--quiet", "--short", "--verify", rev); err != nil {
		e.absorb(ctx, err)
		return false
	}
	return true
}

// CommitsList lists start..end, so start itself is excluded. On failure the
// command line and git's stderr are written to the diagnostic writer and an
// empty list is returned.
func (e *Executor) CommitsList(ctx context.Context, dir, start, end string) []Commit {
	out, err := e.Run(ctx, dir, "log", "--oneline", start+".."+end)
	if err != nil {
		e.absorb(ctx, err)
		e.printFailure(err)
		return []Commit{}
	}

	if out == "" {
		return []Commit{}
	}

	lines := strings.Split(out, "\n")
	commits := make([]Commit, 0, len(lines))
	for _, line := range lines {
		commits = append(commits, ParseCommitLine(line))
	}
	return commits
}

func (e *Executor) printFailure(err error) {
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		return
	}
	_, _ = fmt.Fprintf(e.diag, "Git command '%s' failed with the following error:\n", cmdErr.CommandLine())
	_, _ = fmt.Fprintln(e.diag, strings.TrimSuffix(cmdErr.Stderr, "\n"))
}

func (e *Executor) IsSigningEnabled(ctx context.Context, dir string) bool {
	if _, err := e.Run(ctx, dir, "config", "user.signingkey"); err != nil {
		e.absorb(ctx, err)
		return false
	}
	return true
}

func (e *Executor) UserEmail(ctx context.Context, dir string) string {
	email, err := e.Run(ctx, dir, "config", "user.email")
	if err != nil {
		e.absorb(ctx, err)
		return ""
	}
	return email
}

// absorb records a failure that a query turns into its default value.
func (e *Executor) absorb(ctx context.Context, err error) {
	ev := e.log.Debug().Ctx(ctx)
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		ev = ev.Strs("args", cmdErr.Args).Str("stderr", cmdErr.Stderr).AnErr("cause", cmdErr.Err)
	} else {
		ev = ev.Err(err)
	}
	ev.Msg("git query absorbed failure")
}
