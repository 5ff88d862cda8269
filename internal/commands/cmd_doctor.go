package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/gitquery/internal/core/doctor"
	"github.com/hay-kot/gitquery/internal/core/styles"
	"github.com/hay-kot/gitquery/pkg/iojson"
)

type DoctorCmd struct {
	flags  *Flags
	format string
}

func NewDoctorCmd(flags *Flags) *DoctorCmd {
	return &DoctorCmd{flags: flags}
}

func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "doctor",
		Usage:       "Run health checks on git and the current repository",
		UsageText:   "gitquery doctor [options]",
		Description: "Checks that git is installed and reports the repository root, branch, and commit identity.",
		Flags:       []cli.Flag{formatFlag(&cmd.format)},
		Action:      cmd.run,
	})
	return app
}

func (cmd *DoctorCmd) checks() []doctor.Check {
	cfg := cmd.flags.Config
	return []doctor.Check{
		doctor.NewToolsCheck(cfg.GitPath),
		doctor.NewRepoCheck(cmd.flags.Git, cmd.flags.Dir, doctor.RepoCheckOptions{
			RequireEmail:   cfg.Doctor.EmailRequired(),
			RequireSigning: cfg.Doctor.RequireSigning,
		}),
	}
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	if err := checkFormat(cmd.format); err != nil {
		return err
	}

	ctx = cmd.flags.logContext(ctx, "doctor")
	results := doctor.RunAll(ctx, cmd.checks())

	if cmd.format == formatJSON {
		if err := cmd.outputJSON(c, results); err != nil {
			return err
		}
	} else {
		cmd.outputText(c.Root().ErrWriter, results)
	}

	if _, _, failed := doctor.Summary(results); failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *DoctorCmd) outputJSON(c *cli.Command, results []doctor.Result) error {
	passed, warned, failed := doctor.Summary(results)

	out := struct {
		Healthy bool            `json:"healthy"`
		Summary summaryJSON     `json:"summary"`
		Checks  []doctor.Result `json:"checks"`
	}{
		Healthy: failed == 0,
		Summary: summaryJSON{Passed: passed, Warned: warned, Failed: failed},
		Checks:  results,
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, out)
}

type summaryJSON struct {
	Passed int `json:"passed"`
	Warned int `json:"warned"`
	Failed int `json:"failed"`
}

func (cmd *DoctorCmd) outputText(w io.Writer, results []doctor.Result) {
	divider := styles.TextMutedStyle.Render(strings.Repeat("─", 40))

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, styles.TextPrimaryBoldStyle.Render("gitquery doctor"))
	_, _ = fmt.Fprintln(w, divider)
	_, _ = fmt.Fprintln(w)

	for _, result := range results {
		_, _ = fmt.Fprintln(w, styles.TextForegroundBoldStyle.Render(result.Name))

		for _, item := range result.Items {
			var detail string
			if item.Detail != "" {
				detail = " " + styles.TextMutedStyle.Render(item.Detail)
			}

			var icon string
			switch item.Status {
			case doctor.StatusPass:
				icon = styles.TextSuccessStyle.Render(styles.IconPass)
			case doctor.StatusWarn:
				icon = styles.TextWarningStyle.Render(styles.IconWarn)
			case doctor.StatusFail:
				icon = styles.TextErrorStyle.Render(styles.IconFail)
			}

			_, _ = fmt.Fprintf(w, "  %s %s%s\n", icon, item.Label, detail)
		}

		_, _ = fmt.Fprintln(w)
	}

	passed, warned, failed := doctor.Summary(results)
	_, _ = fmt.Fprintf(w, "%s  %s  %s\n",
		styles.TextSuccessStyle.Render(fmt.Sprintf("%d passed", passed)),
		styles.TextWarningStyle.Render(fmt.Sprintf("%d warnings", warned)),
		styles.TextErrorStyle.Render(fmt.Sprintf("%d failed", failed)),
	)
}
