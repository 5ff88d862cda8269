package commands

import (
	"context"

	"github.com/urfave/cli/v3"
)

type RepoCmd struct {
	flags  *Flags
	format string
}

// NewRepoCmd creates the root and branch commands.
func NewRepoCmd(flags *Flags) *RepoCmd {
	return &RepoCmd{flags: flags}
}

// Register adds the root and branch commands to the application.
func (cmd *RepoCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:        "root",
			Usage:       "Print the top-level directory of the repository",
			UsageText:   "gitquery root [options]",
			Description: "Prints nothing and exits 1 when not inside a repository.",
			Flags:       []cli.Flag{formatFlag(&cmd.format)},
			Action:      cmd.runRoot,
		},
		&cli.Command{
			Name:        "branch",
			Usage:       "Print the current branch name",
			UsageText:   "gitquery branch [options]",
			Description: "Prints nothing and exits 1 when HEAD is detached.",
			Flags:       []cli.Flag{formatFlag(&cmd.format)},
			Action:      cmd.runBranch,
		},
	)
	return app
}

func (cmd *RepoCmd) runRoot(ctx context.Context, c *cli.Command) error {
	ctx = cmd.flags.logContext(ctx, "root")
	return writeString(c, cmd.format, "root", cmd.flags.Git.RepoRoot(ctx, cmd.flags.Dir))
}

func (cmd *RepoCmd) runBranch(ctx context.Context, c *cli.Command) error {
	ctx = cmd.flags.logContext(ctx, "branch")
	return writeString(c, cmd.format, "branch", cmd.flags.Git.CurrentBranch(ctx, cmd.flags.Dir))
}
