package commands

import (
	"context"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/gitquery/internal/core/git"
	"github.com/hay-kot/gitquery/internal/core/validate"
	"github.com/hay-kot/gitquery/pkg/iojson"
)

type CommitsCmd struct {
	flags  *Flags
	format string
}

// NewCommitsCmd creates the commits command.
func NewCommitsCmd(flags *Flags) *CommitsCmd {
	return &CommitsCmd{flags: flags}
}

// Register adds the commits command to the application.
func (cmd *CommitsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "commits",
		Usage:     "List commits in start..end, newest first",
		UsageText: "gitquery commits [options] <start> <end>",
		Description: `Lists the commits reachable from <end> but not from <start>, one
"<short-hash> <title>" per line. If git fails, its error is printed to stderr
and the list is empty; the command still exits 0.`,
		Flags:  []cli.Flag{formatFlag(&cmd.format)},
		Action: cmd.run,
	})
	return app
}

func (cmd *CommitsCmd) run(ctx context.Context, c *cli.Command) error {
	if err := checkFormat(cmd.format); err != nil {
		return err
	}
	if c.Args().Len() != 2 {
		return fmt.Errorf("expected <start> and <end> arguments, got %d argument(s)", c.Args().Len())
	}

	start, end := c.Args().Get(0), c.Args().Get(1)
	if err := criterio.ValidateStruct(
		validate.RefField("start", start),
		validate.RefField("end", end),
	); err != nil {
		return err
	}

	ctx = cmd.flags.logContext(ctx, "commits")
	commits := cmd.flags.Git.CommitsList(ctx, cmd.flags.Dir, start, end)

	root := c.Root()
	if cmd.format == formatJSON {
		out := struct {
			Range   string       `json:"range"`
			Commits []git.Commit `json:"commits"`
		}{
			Range:   start + ".." + end,
			Commits: commits,
		}
		return iojson.WriteWith(root.Writer, root.ErrWriter, out)
	}

	for _, commit := range commits {
		_, _ = fmt.Fprintln(root.Writer, commit.String())
	}
	return nil
}
