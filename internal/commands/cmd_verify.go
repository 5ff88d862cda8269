package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/gitquery/internal/core/validate"
)

type VerifyCmd struct {
	flags  *Flags
	format string
}

// NewVerifyCmd creates the verify-commit and verify-object commands.
func NewVerifyCmd(flags *Flags) *VerifyCmd {
	return &VerifyCmd{flags: flags}
}

// Register adds the verify commands to the application.
func (cmd *VerifyCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:        "verify-commit",
			Usage:       "Check that a reference resolves to a commit",
			UsageText:   "gitquery verify-commit [options] <ref>",
			Description: "Annotated tags are peeled to the commit they point at. Exits 1 when the reference is not a commit.",
			Flags:       []cli.Flag{formatFlag(&cmd.format)},
			Action:      cmd.runCommit,
		},
		&cli.Command{
			Name:        "verify-object",
			Usage:       "Check that a reference resolves to any object",
			UsageText:   "gitquery verify-object [options] <ref>",
			Description: "Accepts commits, tags, trees and blobs. Exits 1 when the reference does not resolve.",
			Flags:       []cli.Flag{formatFlag(&cmd.format)},
			Action:      cmd.runObject,
		},
	)
	return app
}

func (cmd *VerifyCmd) runCommit(ctx context.Context, c *cli.Command) error {
	ref, err := singleRef(c)
	if err != nil {
		return err
	}
	ctx = cmd.flags.logContext(ctx, "verify-commit")
	return writeBool(c, cmd.format, "valid", cmd.flags.Git.IsValidCommit(ctx, cmd.flags.Dir, ref))
}

func (cmd *VerifyCmd) runObject(ctx context.Context, c *cli.Command) error {
	ref, err := singleRef(c)
	if err != nil {
		return err
	}
	ctx = cmd.flags.logContext(ctx, "verify-object")
	return writeBool(c, cmd.format, "valid", cmd.flags.Git.IsValidObject(ctx, cmd.flags.Dir, ref))
}

func singleRef(c *cli.Command) (string, error) {
	if c.Args().Len() != 1 {
		return "", fmt.Errorf("expected exactly one <ref> argument, got %d", c.Args().Len())
	}

	ref := c.Args().First()
	if err := validate.RefField("ref", ref); err != nil {
		return "", err
	}
	return ref, nil
}
