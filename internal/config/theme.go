package config

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/goliatone/go-viewkit/pkg/render"
	"github.com/goliatone/go-viewkit/pkg/themes"
)

type Theme struct {
	File    string `env:"FILE,expand"`
	Name    string `env:"NAME" envDefault:"default"`
	Variant string `env:"VARIANT"`
}

// Selector loads the bundled themes, merges the optional theme file on top, and
// returns a selector defaulting to the configured name and variant.
func (t Theme) Selector() (*render.StaticSelector, error) {
	store, err := themes.LoadFS(themes.EmbeddedFS())
	if err != nil {
		return nil, errors.Wrap(err, "could not load bundled themes")
	}

	if path := strings.TrimSpace(t.File); path != "" {
		extra, err := themes.LoadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "could not load theme file '%s'", path)
		}
		store.Merge(extra)
	}

	name := strings.TrimSpace(t.Name)
	if name != "" {
		if _, ok := store.Manifest(name); !ok {
			return nil, errors.Errorf("unknown theme '%s' (available: %s)", name, strings.Join(store.Names(), ", "))
		}
	}

	selector, err := store.Selector(name, strings.TrimSpace(t.Variant))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return selector, nil
}
