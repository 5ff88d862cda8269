package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/gitquery/internal/core/config"
	"github.com/hay-kot/gitquery/internal/core/styles"
	"github.com/hay-kot/gitquery/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "gitquery config validate [options]",
				Description: "Validates the configuration file and checks that git_path resolves to an executable.",
				Flags:       []cli.Flag{formatFlag(&cmd.format)},
				Action:      cmd.run,
			},
		},
	})

	return app
}

type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	if err := checkFormat(cmd.format); err != nil {
		return err
	}

	cfg := cmd.flags.Config
	errs := collectErrors(cfg.ValidateDeep(cmd.flags.ConfigPath))
	warnings := cfg.Warnings()

	root := c.Root()
	if cmd.format == formatJSON {
		out := struct {
			Valid    bool                       `json:"valid"`
			Errors   []validationError          `json:"errors,omitempty"`
			Warnings []config.ValidationWarning `json:"warnings,omitempty"`
		}{
			Valid:    len(errs) == 0,
			Errors:   errs,
			Warnings: warnings,
		}
		if err := iojson.WriteWith(root.Writer, root.ErrWriter, out); err != nil {
			return err
		}
	} else {
		outputValidationText(root.ErrWriter, errs, warnings)
	}

	if len(errs) > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

// collectErrors flattens criterio field errors; any other error becomes a
// single entry without a field.
func collectErrors(err error) []validationError {
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []validationError{{Message: err.Error()}}
	}

	out := make([]validationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, validationError{Field: fe.Field, Message: fe.Err.Error()})
	}
	return out
}

func outputValidationText(w io.Writer, errs []validationError, warnings []config.ValidationWarning) {
	for _, warn := range warnings {
		_, _ = fmt.Fprintf(w, "%s %s: %s\n", styles.TextWarningStyle.Render(styles.IconWarn), warn.Category, warn.Message)
	}

	for _, e := range errs {
		label := e.Field
		if label == "" {
			label = "config"
		}
		_, _ = fmt.Fprintf(w, "%s %s: %s\n", styles.TextErrorStyle.Render(styles.IconFail), label, e.Message)
	}

	if len(errs) == 0 {
		_, _ = fmt.Fprintln(w, styles.TextSuccessStyle.Render(styles.IconPass+" Configuration is valid"))
		return
	}
	_, _ = fmt.Fprintln(w, styles.TextErrorStyle.Render(fmt.Sprintf("%d error(s) found", len(errs))))
}
