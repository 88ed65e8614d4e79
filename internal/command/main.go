package command

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	paramLogLevel = "log-level"
	paramDebug    = "debug"

	metadataLogLevel = "logLevel"
)

// NewApp assembles the CLI application with the shared logging flags.
func NewApp(name string, usage string, commands ...*cli.Command) *cli.App {
	level := new(slog.LevelVar)

	app := &cli.App{
		Name:     name,
		Metadata: map[string]any{metadataLogLevel: level},
		Usage:    usage,
		Commands: commands,
		Before: func(ctx *cli.Context) error {
			slogLevel, err := parseLogLevel(ctx.String(paramLogLevel))
			if err != nil {
				return errors.WithStack(err)
			}

			level.Set(slogLevel)

			logger := slog.New(slog.NewTextHandler(ctx.App.ErrWriter, &slog.HandlerOptions{
				Level:     level,
				AddSource: ctx.Bool(paramDebug),
			}))

			slog.SetDefault(logger)

			return nil
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    paramDebug,
				Value:   false,
				EnvVars: []string{"VIEWKIT_CLI_DEBUG"},
				Usage:   "Toggle debug mode",
			},
			&cli.StringFlag{
				Name:    paramLogLevel,
				EnvVars: []string{"VIEWKIT_CLI_LOG_LEVEL"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
	}

	app.ExitErrHandler = func(ctx *cli.Context, err error) {
		if err == nil {
			return
		}

		if !ctx.Bool(paramDebug) {
			slog.ErrorContext(ctx.Context, err.Error())
		} else {
			slog.ErrorContext(ctx.Context, fmt.Sprintf("%+v", err))
		}
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	return app
}

func Main(name string, usage string, commands ...*cli.Command) {
	app := NewApp(name, usage, commands...)
	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

// ApplyConfigLogLevel re-levels the application logger from configuration.
// An explicit --log-level flag or VIEWKIT_CLI_LOG_LEVEL wins.
func ApplyConfigLogLevel(ctx *cli.Context, configured slog.Level) {
	if ctx.IsSet(paramLogLevel) {
		return
	}
	level, ok := ctx.App.Metadata[metadataLogLevel].(*slog.LevelVar)
	if !ok {
		return
	}
	level.Set(configured)
}

func parseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if raw == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return 0, errors.Wrapf(err, "invalid log level '%s'", raw)
	}
	return level, nil
}
