package server

import (
	"log/slog"
	"net/http"
	"time"
)

type Options struct {
	Address       string
	BaseURL       string
	Routes        map[string]string
	ShutdownGrace time.Duration
	Logger        *slog.Logger
	Mounts        map[string]http.Handler
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Address:       ":3002",
		BaseURL:       "/",
		Routes:        map[string]string{},
		ShutdownGrace: 5 * time.Second,
		Mounts:        map[string]http.Handler{},
	}
	for _, fn := range funcs {
		if fn == nil {
			continue
		}
		fn(opts)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.ShutdownGrace <= 0 {
		opts.ShutdownGrace = 5 * time.Second
	}
	return opts
}

func WithAddress(addr string) OptionFunc {
	return func(opts *Options) {
		opts.Address = addr
	}
}

func WithBaseURL(baseURL string) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

// WithRoute maps a request path to a registered component.
func WithRoute(path, component string) OptionFunc {
	return func(opts *Options) {
		opts.Routes[path] = component
	}
}

func WithRoutes(routes map[string]string) OptionFunc {
	return func(opts *Options) {
		for path, component := range routes {
			opts.Routes[path] = component
		}
	}
}

func WithShutdownGrace(grace time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.ShutdownGrace = grace
	}
}

func WithLogger(logger *slog.Logger) OptionFunc {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

func WithMount(prefix string, handler http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.Mounts[prefix] = handler
	}
}
