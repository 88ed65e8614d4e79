package server

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/goliatone/go-viewkit/pkg/components"
	"github.com/goliatone/go-viewkit/pkg/orchestrator"
	"github.com/goliatone/go-viewkit/pkg/render"
	"github.com/goliatone/go-viewkit/pkg/renderers/tree"
)

const (
	queryFormat   = "format"
	queryRenderer = "renderer"
	queryTheme    = "theme"
	queryVariant  = "variant"
)

type pageHandler struct {
	generator *orchestrator.Orchestrator
	component string
	status    int
}

// ServeHTTP renders the handler's component. A non-zero status overrides the
// status recorded on the component descriptor.
func (h *pageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rendererName, err := h.rendererName(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	query := r.URL.Query()
	result, err := h.generator.Render(r.Context(), orchestrator.Request{
		Component:    h.component,
		Renderer:     rendererName,
		ThemeName:    query.Get(queryTheme),
		ThemeVariant: query.Get(queryVariant),
	})
	if err != nil {
		switch {
		case errors.Is(err, orchestrator.ErrComponentNotFound):
			err = NewUserError(http.StatusNotFound, "component not found", err)
		case errors.Is(err, render.ErrThemeNotFound):
			err = NewUserError(http.StatusBadRequest, "unknown theme", err)
		}
		HandleError(w, r, errors.WithStack(err))
		return
	}

	status := h.status
	if status == 0 {
		status = result.Page.Status
	}
	if status == 0 {
		status = http.StatusOK
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Vary", "Accept")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(result.Body)
}

// rendererName resolves the renderer from the request: an explicit renderer
// query parameter wins, then format=json, then the Accept header. An empty
// result defers to the orchestrator default.
func (h *pageHandler) rendererName(r *http.Request) (string, error) {
	query := r.URL.Query()
	registry := h.generator.Renderers()

	if name := strings.TrimSpace(query.Get(queryRenderer)); name != "" {
		if !registry.Has(name) {
			return "", NewUserError(http.StatusBadRequest, "unknown renderer", errors.Errorf("renderer '%s' is not registered", name))
		}
		return name, nil
	}

	switch strings.ToLower(strings.TrimSpace(query.Get(queryFormat))) {
	case "":
	case "json":
		return tree.Name, nil
	case "html":
		return "", nil
	default:
		return "", NewUserError(http.StatusBadRequest, "unsupported format", errors.Errorf("format '%s' is not supported", query.Get(queryFormat)))
	}

	if renderer, ok := registry.Negotiate(r.Header.Get("Accept")); ok {
		return renderer.Name(), nil
	}
	return "", nil
}

func notFoundHandler(generator *orchestrator.Orchestrator) http.Handler {
	return &pageHandler{
		generator: generator,
		component: components.NameNotFound,
		status:    http.StatusNotFound,
	}
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func methodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", "GET, HEAD")
		HandleError(w, r, NewHTTPError(http.StatusMethodNotAllowed))
	})
}
