package command

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/goliatone/go-viewkit/internal/config"
	"github.com/goliatone/go-viewkit/internal/setup"
)

// Serve runs the HTTP server configured from VIEWKIT_* variables until
// interrupted.
func Serve() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve components over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "Listen address (overrides VIEWKIT_HTTP_ADDRESS)",
			},
		},
		Action: func(ctx *cli.Context) error {
			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse config")
			}

			ApplyConfigLogLevel(ctx, conf.Logger.Level)

			if address := ctx.String("address"); address != "" {
				conf.HTTP.Address = address
			}

			slog.DebugContext(ctx.Context, "using configuration", slog.Any("config", conf))

			runCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			server, err := setup.NewHTTPServerFromConfig(runCtx, conf)
			if err != nil {
				return errors.Wrap(err, "could not setup http server")
			}

			slog.InfoContext(runCtx, "starting server", slog.String("address", conf.HTTP.Address))

			if err := server.Run(runCtx); err != nil {
				return errors.Wrap(err, "could not run server")
			}

			return nil
		},
	}
}
