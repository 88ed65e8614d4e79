package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

const Prefix = "VIEWKIT_"

type Config struct {
	Logger Logger            `envPrefix:"LOGGER_"`
	HTTP   HTTP              `envPrefix:"HTTP_"`
	Render Render            `envPrefix:"RENDER_"`
	Theme  Theme             `envPrefix:"THEME_"`
	Routes map[string]string `env:"ROUTES" envDefault:"/date=date-field" envSeparator:"," envKeyValSeparator:"="`
}

// Parse reads the configuration from the process environment.
func Parse() (*Config, error) {
	return parse(env.Options{
		Prefix: Prefix,
	})
}

// ParseEnvironment reads the configuration from the given variables only.
func ParseEnvironment(environ map[string]string) (*Config, error) {
	return parse(env.Options{
		Prefix:      Prefix,
		Environment: environ,
	})
}

func parse(opts env.Options) (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := conf.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}
