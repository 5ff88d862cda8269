package doctor

import (
	"context"

	"github.com/hay-kot/gitquery/internal/core/git"
)

// RepoCheckOptions controls which identity settings are mandatory.
type RepoCheckOptions struct {
	RequireEmail   bool
	RequireSigning bool
}

// RepoCheck inspects the repository at dir through the git queries.
type RepoCheck struct {
	git  git.Git
	dir  string
	opts RepoCheckOptions
}

// NewRepoCheck creates a repository check for dir (empty means cwd).
func NewRepoCheck(g git.Git, dir string, opts RepoCheckOptions) *RepoCheck {
	return &RepoCheck{git: g, dir: dir, opts: opts}
}

func (c *RepoCheck) Name() string {
	return "Repository"
}

// Run reports the repository root, branch, and identity. When dir is not
// inside a repository only the root item is reported.
func (c *RepoCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	root := c.git.RepoRoot(ctx, c.dir)
	if root == "" {
		result.Items = append(result.Items, CheckItem{
			Label:  "repository",
			Status: StatusFail,
			Detail: "not inside a git repository",
		})
		return result
	}
	result.Items = append(result.Items, CheckItem{
		Label:  "repository",
		Status: StatusPass,
		Detail: root,
	})

	if branch := c.git.CurrentBranch(ctx, c.dir); branch != "" {
		result.Items = append(result.Items, CheckItem{Label: "branch", Status: StatusPass, Detail: branch})
	} else {
		result.Items = append(result.Items, CheckItem{Label: "branch", Status: StatusWarn, Detail: "detached HEAD"})
	}

	if email := c.git.UserEmail(ctx, c.dir); email != "" {
		result.Items = append(result.Items, CheckItem{Label: "user.email", Status: StatusPass, Detail: email})
	} else {
		result.Items = append(result.Items, CheckItem{
			Label:  "user.email",
			Status: severity(c.opts.RequireEmail),
			Detail: "not configured",
		})
	}

	if c.git.IsSigningEnabled(ctx, c.dir) {
		result.Items = append(result.Items, CheckItem{Label: "user.signingkey", Status: StatusPass, Detail: "configured"})
	} else {
		result.Items = append(result.Items, CheckItem{
			Label:  "user.signingkey",
			Status: severity(c.opts.RequireSigning),
			Detail: "not configured",
		})
	}

	return result
}
