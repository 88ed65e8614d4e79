package config

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

var ErrInvalidRoute = errors.New("invalid route")

// reservedPaths are served by the HTTP server itself. A trailing "/" reserves
// the whole subtree.
var reservedPaths = []string{"/healthz", "/assets/"}

// Validate checks the route table. Every route must be an absolute literal
// path mapped to a non-empty component name and must not shadow a path the
// server reserves.
func (c *Config) Validate() error {
	for path, component := range c.Routes {
		if !strings.HasPrefix(path, "/") {
			return errors.Wrapf(ErrInvalidRoute, "path '%s' must start with '/'", path)
		}
		if strings.ContainsAny(path, "{}") || strings.IndexFunc(path, unicode.IsSpace) >= 0 {
			return errors.Wrapf(ErrInvalidRoute, "path '%s' must not contain wildcards or whitespace", path)
		}
		if reserved, ok := reservedPath(path); ok {
			return errors.Wrapf(ErrInvalidRoute, "path '%s' is reserved by '%s'", path, reserved)
		}
		if strings.TrimSpace(component) == "" {
			return errors.Wrapf(ErrInvalidRoute, "path '%s' has no component", path)
		}
	}
	return nil
}

func reservedPath(path string) (string, bool) {
	for _, reserved := range reservedPaths {
		if path == reserved || (strings.HasSuffix(reserved, "/") && strings.HasPrefix(path, reserved)) {
			return reserved, true
		}
	}
	return "", false
}
