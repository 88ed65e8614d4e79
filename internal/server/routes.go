package server

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Paths served by the server itself, relative to the base URL.
const (
	AssetsPath = "/assets/"
	HealthPath = "/healthz"
)

// mountPath joins the base URL and a route path into a single absolute path.
func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	if routePath == "/" {
		return basePath + "/"
	}
	return basePath + routePath
}

// routePattern turns a mount path into a GET pattern that only matches the
// exact path. Paths ending in "/" would otherwise match the whole subtree.
func routePattern(path string) string {
	if strings.HasSuffix(path, "/") {
		return "GET " + path + "{$}"
	}
	return "GET " + path
}

// anyMethodPattern matches the same path as routePattern for every method.
// Non-GET requests to a configured route answer 405 rather than falling
// through to the not-found page.
func anyMethodPattern(path string) string {
	return strings.TrimPrefix(routePattern(path), "GET ")
}

// handle registers a pattern, reporting the ServeMux panics for malformed or
// conflicting patterns as errors.
func handle(mux *http.ServeMux, pattern string, handler http.Handler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("could not register pattern '%s': %s", pattern, fmt.Sprint(r))
		}
	}()
	mux.Handle(pattern, handler)
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
