package render

import (
	"errors"
	"fmt"
	"maps"
	"path"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ThemeConfig is the renderer-facing view of a theme selection: merged tokens,
// derived CSS variables, template partials, and an asset URL resolver.
type ThemeConfig struct {
	Theme    string
	Variant  string
	Tokens   map[string]string
	CSSVars  map[string]string
	Partials map[string]string
	AssetURL func(key string) string
}

// DefaultPartials maps partial keys to the embedded templates renderers load
// when a theme does not override them.
func DefaultPartials() map[string]string {
	return map[string]string{
		"layout.page": "templates/page.tmpl",
	}
}

// CSSVarNames returns the CSS variable names sorted for deterministic output.
func (c *ThemeConfig) CSSVarNames() []string {
	if c == nil || len(c.CSSVars) == 0 {
		return nil
	}
	names := make([]string, 0, len(c.CSSVars))
	for name := range c.CSSVars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Partial resolves a partial key, falling back to the provided default.
func (c *ThemeConfig) Partial(key, fallback string) string {
	if c == nil {
		return fallback
	}
	if candidate := strings.TrimSpace(c.Partials[key]); candidate != "" {
		return candidate
	}
	return fallback
}

// ResolveTheme asks the selector for a theme/variant and converts the result
// into a ThemeConfig. A nil selector yields a nil config.
func ResolveTheme(selector theme.ThemeSelector, name, variant string, fallbacks map[string]string) (*ThemeConfig, error) {
	if selector == nil {
		return nil, nil
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("render: select theme %q: %w", name, err)
	}
	return ThemeConfigFromSelection(selection, fallbacks)
}

// ThemeConfigFromSelection merges the selected variant over its manifest.
// Variant tokens, templates, and asset files win over the base manifest;
// partials missing from both fall back to fallbacks.
func ThemeConfigFromSelection(selection *theme.Selection, fallbacks map[string]string) (*ThemeConfig, error) {
	if selection == nil {
		return nil, errors.New("render: theme selection is nil")
	}
	manifest := selection.Manifest
	if manifest == nil {
		return nil, fmt.Errorf("render: theme %q has no manifest", selection.Theme)
	}

	cfg := &ThemeConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Tokens:   make(map[string]string),
		CSSVars:  make(map[string]string),
		Partials: make(map[string]string),
	}

	maps.Copy(cfg.Partials, fallbacks)
	maps.Copy(cfg.Partials, manifest.Templates)
	maps.Copy(cfg.Tokens, manifest.Tokens)

	prefix := manifest.Assets.Prefix
	files := make(map[string]string, len(manifest.Assets.Files))
	maps.Copy(files, manifest.Assets.Files)

	if variant, ok := manifest.Variants[selection.Variant]; ok {
		maps.Copy(cfg.Partials, variant.Templates)
		maps.Copy(cfg.Tokens, variant.Tokens)
		maps.Copy(files, variant.Assets.Files)
		if variant.Assets.Prefix != "" {
			prefix = variant.Assets.Prefix
		}
	}

	for key, value := range cfg.Tokens {
		cfg.CSSVars["--"+key] = value
	}

	cfg.AssetURL = func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if strings.HasPrefix(file, "/") || strings.Contains(file, "://") || prefix == "" {
			return file
		}
		return path.Join(prefix, file)
	}

	return cfg, nil
}
