package commands

import (
	"context"

	"github.com/urfave/cli/v3"
)

type IdentityCmd struct {
	flags  *Flags
	format string
}

// NewIdentityCmd creates the email and signing commands.
func NewIdentityCmd(flags *Flags) *IdentityCmd {
	return &IdentityCmd{flags: flags}
}

// Register adds the identity commands to the application.
func (cmd *IdentityCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:        "email",
			Usage:       "Print the configured user.email",
			UsageText:   "gitquery email [options]",
			Description: "Prints nothing and exits 1 when user.email is not configured.",
			Flags:       []cli.Flag{formatFlag(&cmd.format)},
			Action:      cmd.runEmail,
		},
		&cli.Command{
			Name:        "signing",
			Usage:       "Report whether a commit signing key is configured",
			UsageText:   "gitquery signing [options]",
			Description: "Checks that user.signingkey can be read. Exits 1 when it is unset.",
			Flags:       []cli.Flag{formatFlag(&cmd.format)},
			Action:      cmd.runSigning,
		},
	)
	return app
}

func (cmd *IdentityCmd) runEmail(ctx context.Context, c *cli.Command) error {
	ctx = cmd.flags.logContext(ctx, "email")
	return writeString(c, cmd.format, "email", cmd.flags.Git.UserEmail(ctx, cmd.flags.Dir))
}

func (cmd *IdentityCmd) runSigning(ctx context.Context, c *cli.Command) error {
	ctx = cmd.flags.logContext(ctx, "signing")
	return writeBool(c, cmd.format, "signing", cmd.flags.Git.IsSigningEnabled(ctx, cmd.flags.Dir))
}
