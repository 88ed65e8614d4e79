package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	sloghttp "github.com/samber/slog-http"

	"github.com/goliatone/go-viewkit/pkg/orchestrator"
	"github.com/goliatone/go-viewkit/pkg/renderers/vanilla"
)

type Server struct {
	opts      *Options
	generator *orchestrator.Orchestrator
	handler   http.Handler
}

// New builds the HTTP delivery layer around generator. Every configured route
// must name a registered component.
func New(generator *orchestrator.Orchestrator, funcs ...OptionFunc) (*Server, error) {
	if generator == nil {
		return nil, errors.New("generator is required")
	}

	opts := NewOptions(funcs...)

	mux := http.NewServeMux()

	assetsPath := mountPath(opts.BaseURL, AssetsPath)
	healthPath := mountPath(opts.BaseURL, HealthPath)

	seen := map[string]string{}
	for _, path := range sortedKeys(opts.Routes) {
		component := opts.Routes[path]
		if _, ok := generator.Components().Descriptor(component); !ok {
			return nil, errors.Errorf("route '%s': unknown component '%s'", path, component)
		}

		mounted := mountPath(opts.BaseURL, path)
		if mounted == healthPath || strings.HasPrefix(mounted, assetsPath) {
			return nil, errors.Errorf("route '%s': path '%s' is reserved", path, mounted)
		}
		pattern := routePattern(mounted)
		if previous, ok := seen[pattern]; ok {
			return nil, errors.Errorf("route '%s': pattern '%s' already used by route '%s'", path, pattern, previous)
		}
		seen[pattern] = path

		if err := handle(mux, pattern, &pageHandler{generator: generator, component: component}); err != nil {
			return nil, errors.Wrapf(err, "route '%s'", path)
		}
		if err := handle(mux, anyMethodPattern(mounted), methodNotAllowed()); err != nil {
			return nil, errors.Wrapf(err, "route '%s'", path)
		}
	}

	if err := handle(mux, "GET "+assetsPath, http.StripPrefix(assetsPath, http.FileServerFS(vanilla.AssetsFS()))); err != nil {
		return nil, err
	}
	if err := handle(mux, "GET "+healthPath, http.HandlerFunc(healthHandler)); err != nil {
		return nil, err
	}

	for _, prefix := range sortedKeys(opts.Mounts) {
		if err := handle(mux, mountPath(opts.BaseURL, prefix), opts.Mounts[prefix]); err != nil {
			return nil, errors.Wrapf(err, "mount '%s'", prefix)
		}
	}

	if err := handle(mux, "/", notFoundHandler(generator)); err != nil {
		return nil, err
	}

	var handler http.Handler = mux
	handler = sloghttp.Recovery(handler)
	handler = sloghttp.New(opts.Logger)(handler)

	return &Server{
		opts:      opts,
		generator: generator,
		handler:   handler,
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address until ctx is done, then shuts down
// within the configured grace period.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.opts.Address)
	if err != nil {
		return errors.Wrapf(err, "could not listen on '%s'", s.opts.Address)
	}
	return s.Serve(ctx, listener)
}

func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "http server listening", slog.String("address", listener.Addr().String()))
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- errors.WithStack(err)
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownGrace)
	defer cancel()

	slog.InfoContext(ctx, "shutting down http server")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "could not shutdown http server")
	}

	return <-errChan
}
