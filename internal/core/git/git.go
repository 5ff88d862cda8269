// Package git answers narrow questions about repository state by running the
// git command-line tool.
//
// Every query spawns exactly one git process, buffers its output, and maps the
// outcome to a plain value. A failed git invocation is represented by
// *CommandError; most queries absorb it into an empty or false result, since
// "no repository" or "no such ref" are answers rather than errors.
package git

import (
	"context"
	"strings"
)

// Git defines the repository queries needed by gitquery. An empty dir means
// the current working directory.
type Git interface {
	// RepoRoot returns the top-level directory of the repository containing
	// dir, or "" when dir is not inside a repository.
	RepoRoot(ctx context.Context, dir string) string
	// CurrentBranch returns the short name of the checked out branch, or ""
	// when HEAD is detached.
	CurrentBranch(ctx context.Context, dir string) string
	// IsValidCommit reports whether ref resolves to a commit, peeling
	// annotated tags.
	IsValidCommit(ctx context.Context, dir, ref string) bool
	// IsValidObject reports whether ref resolves to an object of any type.
	IsValidObject(ctx context.Context, dir, ref string) bool
	// CommitsList returns the commits in start..end, newest first.
	CommitsList(ctx context.Context, dir, start, end string) []Commit
	// IsSigningEnabled reports whether user.signingkey is configured.
	IsSigningEnabled(ctx context.Context, dir string) bool
	// UserEmail returns the configured user.email, or "" when unset.
	UserEmail(ctx context.Context, dir string) string
}

// Commit is one entry of a `git log --oneline` listing.
type Commit struct {
	Hash  string `json:"hash"`
	Title string `json:"title"`
}

// ParseCommitLine splits a `--oneline` line at the first space.
// A line without a space is treated as a bare hash.
func ParseCommitLine(line string) Commit {
	hash, title, _ := strings.Cut(line, " ")
	return Commit{Hash: hash, Title: title}
}

// String returns the commit in `--oneline` form: "<short-hash> <title>".
func (c Commit) String() string {
	return c.Hash + " " + c.Title
}
