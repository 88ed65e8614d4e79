package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-viewkit/pkg/model"
	"github.com/goliatone/go-viewkit/pkg/render"
)

type stubRenderer struct {
	name        string
	contentType string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return s.contentType }
func (s stubRenderer) Render(context.Context, model.Page, render.RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "html", contentType: "text/html; charset=utf-8"})

	if err := registry.Register(stubRenderer{name: "html"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(stubRenderer{name: " "}); err == nil {
		t.Fatalf("expected empty name error")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}

	if !registry.Has("html") {
		t.Fatalf("expected html renderer")
	}
	if _, err := registry.Get("missing"); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "vanilla"})
	registry.MustRegister(stubRenderer{name: "tree"})

	names := registry.List()
	if len(names) != 2 || names[0] != "tree" || names[1] != "vanilla" {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestRegistry_Negotiate(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "vanilla", contentType: "text/html; charset=utf-8"})
	registry.MustRegister(stubRenderer{name: "tree", contentType: "application/json"})

	cases := []struct {
		accept string
		want   string
		ok     bool
	}{
		{"application/json", "tree", true},
		{"text/html,application/xhtml+xml,*/*;q=0.8", "vanilla", true},
		{"application/xml, application/json;q=0.9", "tree", true},
		{"*/*", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		renderer, ok := registry.Negotiate(tc.accept)
		if ok != tc.ok {
			t.Fatalf("Negotiate(%q) ok = %v, want %v", tc.accept, ok, tc.ok)
		}
		if ok && renderer.Name() != tc.want {
			t.Fatalf("Negotiate(%q) = %s, want %s", tc.accept, renderer.Name(), tc.want)
		}
	}
}
