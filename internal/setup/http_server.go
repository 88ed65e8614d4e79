package setup

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/goliatone/go-viewkit/internal/config"
	"github.com/goliatone/go-viewkit/internal/server"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*server.Server, error) {
	generator, err := NewOrchestratorFromConfig(conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	srv, err := server.New(generator,
		server.WithAddress(conf.HTTP.Address),
		server.WithBaseURL(conf.HTTP.BaseURL),
		server.WithRoutes(conf.Routes),
		server.WithShutdownGrace(conf.HTTP.ShutdownGrace),
		server.WithLogger(slog.Default()),
	)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure http server from config")
	}

	slog.DebugContext(ctx, "http server configured", slog.Any("routes", conf.Routes))

	return srv, nil
}
