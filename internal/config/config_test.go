package config_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-viewkit/internal/config"
)

func TestParseEnvironment_Defaults(t *testing.T) {
	conf, err := config.ParseEnvironment(map[string]string{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if conf.Logger.Level != slog.LevelInfo {
		t.Fatalf("expected info level, got %v", conf.Logger.Level)
	}
	if conf.HTTP.Address != ":3002" || conf.HTTP.BaseURL != "/" {
		t.Fatalf("unexpected http defaults: %+v", conf.HTTP)
	}
	if conf.HTTP.ShutdownGrace != 5*time.Second {
		t.Fatalf("unexpected shutdown grace: %v", conf.HTTP.ShutdownGrace)
	}
	if conf.Render.Renderer != "vanilla" || conf.Render.Sanitize || !conf.Render.DefaultStyles {
		t.Fatalf("unexpected render defaults: %+v", conf.Render)
	}
	if conf.Theme.Name != "default" {
		t.Fatalf("unexpected theme default: %+v", conf.Theme)
	}
	if diff := cmp.Diff(map[string]string{"/date": "date-field"}, conf.Routes); diff != "" {
		t.Fatalf("routes mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEnvironment_Overrides(t *testing.T) {
	conf, err := config.ParseEnvironment(map[string]string{
		"VIEWKIT_LOGGER_LEVEL":    "debug",
		"VIEWKIT_HTTP_ADDRESS":    "127.0.0.1:8080",
		"VIEWKIT_RENDER_RENDERER": "tree",
		"VIEWKIT_RENDER_SANITIZE": "true",
		"VIEWKIT_THEME_VARIANT":   "dark",
		"VIEWKIT_ROUTES":          "/=date-field,/missing=not-found",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if conf.Logger.Level != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", conf.Logger.Level)
	}
	if conf.HTTP.Address != "127.0.0.1:8080" {
		t.Fatalf("unexpected address: %s", conf.HTTP.Address)
	}
	if conf.Render.Renderer != "tree" || !conf.Render.Sanitize {
		t.Fatalf("unexpected render config: %+v", conf.Render)
	}
	want := map[string]string{"/": "date-field", "/missing": "not-found"}
	if diff := cmp.Diff(want, conf.Routes); diff != "" {
		t.Fatalf("routes mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEnvironment_InvalidRoute(t *testing.T) {
	cases := map[string]string{
		"relative":     "date=date-field",
		"health":       "/healthz=date-field",
		"assets root":  "/assets/=date-field",
		"assets child": "/assets/date=date-field",
		"wildcard":     "/{id=date-field",
		"closed brace": "/date}=date-field",
		"no component": "/date=",
	}
	for name, routes := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.ParseEnvironment(map[string]string{"VIEWKIT_ROUTES": routes})
			if !errors.Is(err, config.ErrInvalidRoute) {
				t.Fatalf("expected ErrInvalidRoute for %q, got %v", routes, err)
			}
		})
	}
}

func TestValidate_Routes(t *testing.T) {
	cases := []struct {
		path    string
		wantErr bool
	}{
		{"/", false},
		{"/date", false},
		{"/assets", false},
		{"/healthz/extra", false},
		{" /date", true},
		{"/da te", true},
		{"/date\t", true},
		{"/healthz", true},
		{"/assets/app.css", true},
	}
	for _, tc := range cases {
		conf := &config.Config{Routes: map[string]string{tc.path: "date-field"}}
		err := conf.Validate()
		if tc.wantErr != (err != nil) {
			t.Errorf("Validate(%q): wantErr %v, got %v", tc.path, tc.wantErr, err)
		}
		if err != nil && !errors.Is(err, config.ErrInvalidRoute) {
			t.Errorf("Validate(%q): expected ErrInvalidRoute, got %v", tc.path, err)
		}
	}
}

func TestParseEnvironment_InvalidLevel(t *testing.T) {
	if _, err := config.ParseEnvironment(map[string]string{"VIEWKIT_LOGGER_LEVEL": "loud"}); err == nil {
		t.Fatalf("expected error for invalid level")
	}
}

func TestThemeSelector(t *testing.T) {
	selector, err := config.Theme{Name: "default", Variant: "dark"}.Selector()
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	selection, err := selector.Select("", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if selection.Theme != "default" || selection.Variant != "dark" {
		t.Fatalf("unexpected selection: %s/%s", selection.Theme, selection.Variant)
	}
}

func TestThemeSelector_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brand.yaml")
	if err := os.WriteFile(path, []byte("name: brand\ntokens:\n  brand: \"#ff0000\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	selector, err := config.Theme{File: path, Name: "brand"}.Selector()
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	selection, err := selector.Select("", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if selection.Theme != "brand" {
		t.Fatalf("expected brand theme, got %s", selection.Theme)
	}
}

func TestThemeSelector_UnknownTheme(t *testing.T) {
	if _, err := (config.Theme{Name: "missing"}).Selector(); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}
