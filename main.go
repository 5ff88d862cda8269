package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/gitquery/internal/commands"
	"github.com/hay-kot/gitquery/internal/core/config"
	"github.com/hay-kot/gitquery/internal/core/git"
	"github.com/hay-kot/gitquery/internal/core/logging"
	"github.com/hay-kot/gitquery/internal/core/styles"
	"github.com/hay-kot/gitquery/pkg/executil"
	"github.com/hay-kot/gitquery/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() falls back
	// to runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "gitquery",
		Usage:     "Query repository state through git",
		UsageText: "gitquery [global options] command [command options]",
		Description: `gitquery answers narrow questions about a git repository: where its root
is, which branch is checked out, whether a reference resolves, which commits
lie in a range, and how the commit identity is configured.

Queries print their answer to stdout. String queries exit 1 when there is no
answer; boolean queries exit 1 when the answer is false.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error); overrides log_level from the config file",
				Sources:     cli.EnvVars("GITQUERY_LOG_LEVEL"),
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "write JSON logs to this file instead of stderr",
				Sources:     cli.EnvVars("GITQUERY_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("GITQUERY_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"C"},
				Usage:       "run git in this directory instead of the current one",
				Destination: &flags.Dir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			level := flags.LogLevel
			if level == "" {
				level = cfg.LogLevel
			}

			logger, closer, err := logutils.New(level, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			// Validation ensures the name is known
			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			flags.Git = git.NewExecutor(cfg.GitPath, &executil.RealExecutor{}, c.Root().ErrWriter, logging.Component("git"))

			log.Debug().
				Str("config", flags.ConfigPath).
				Str("git_path", cfg.GitPath).
				Str("dir", flags.Dir).
				Msg("gitquery ready")

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = commands.NewRepoCmd(flags).Register(app)
	app = commands.NewVerifyCmd(flags).Register(app)
	app = commands.NewCommitsCmd(flags).Register(app)
	app = commands.NewIdentityCmd(flags).Register(app)
	app = commands.NewDoctorCmd(flags).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		_, _ = fmt.Fprintln(os.Stderr, runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
