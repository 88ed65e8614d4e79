package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-viewkit/pkg/model"
	"github.com/goliatone/go-viewkit/pkg/render"
	rendertemplate "github.com/goliatone/go-viewkit/pkg/render/template"
	gotemplate "github.com/goliatone/go-viewkit/pkg/render/template/gotemplate"
)

const (
	pageTemplate    = "templates/page.tmpl"
	pagePartialKey  = "layout.page"
	themeStylesheet = "stylesheet"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	stylesheets      []string
	inlineStyles     bool
	fragmentOnly     bool
	sanitize         bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithStylesheet links an additional stylesheet from every rendered page.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		if href = strings.TrimSpace(href); href != "" {
			cfg.stylesheets = append(cfg.stylesheets, href)
		}
	}
}

// WithDefaultStyles inlines the embedded viewkit.css into the page head.
func WithDefaultStyles() Option {
	return func(cfg *config) {
		cfg.inlineStyles = true
	}
}

// WithFragmentOnly skips the page layout and returns component markup only.
func WithFragmentOnly() Option {
	return func(cfg *config) {
		cfg.fragmentOnly = true
	}
}

// WithSanitizer filters component markup through an allow-list policy before
// it is placed into the layout.
func WithSanitizer() Option {
	return func(cfg *config) {
		cfg.sanitize = true
	}
}

type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	stylesheets  []string
	inlineStyles string
	fragmentOnly bool
	sanitize     bool
}

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	r := &Renderer{
		templates:    renderer,
		stylesheets:  cfg.stylesheets,
		fragmentOnly: cfg.fragmentOnly,
		sanitize:     cfg.sanitize,
	}
	if cfg.inlineStyles {
		r.inlineStyles = defaultStylesheet()
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render serialises the page tree and, unless configured for fragments, wraps
// it in the page layout.
func (r *Renderer) Render(ctx context.Context, page model.Page, options render.RenderOptions) ([]byte, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	fragment, err := RenderFragment(page.Root)
	if err != nil {
		return nil, err
	}
	if r.sanitize {
		fragment = sanitizeFragment(fragment)
	}
	if r.fragmentOnly {
		return fragment, nil
	}

	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate(r.layoutTemplate(options.Theme), r.layoutData(page, fragment, options))
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

type templateChecker interface {
	HasTemplate(name string) bool
}

func (r *Renderer) layoutTemplate(theme *render.ThemeConfig) string {
	candidate := theme.Partial(pagePartialKey, pageTemplate)
	if candidate == pageTemplate {
		return pageTemplate
	}
	if checker, ok := r.templates.(templateChecker); ok && !checker.HasTemplate(candidate) {
		return pageTemplate
	}
	return candidate
}

func (r *Renderer) layoutData(page model.Page, fragment []byte, options render.RenderOptions) map[string]any {
	title := strings.TrimSpace(options.Title)
	if title == "" {
		title = page.Title
	}

	data := map[string]any{
		"name":          page.Name,
		"title":         title,
		"content":       string(fragment),
		"stylesheets":   r.collectStylesheets(options),
		"inline_styles": r.inlineStyles,
		"page_class":    DefaultPageClass,
		"content_class": DefaultContentClass,
	}

	if theme := options.Theme; theme != nil {
		data["theme"] = theme.Theme
		data["variant"] = theme.Variant
		if vars := cssVars(theme); len(vars) > 0 {
			data["css_vars"] = vars
		}
		if class := strings.TrimSpace(theme.Tokens["page-class"]); class != "" {
			data["page_class"] = []any{DefaultPageClass, class}
		}
	}
	return data
}

func (r *Renderer) collectStylesheets(options render.RenderOptions) []any {
	var candidates []string
	candidates = append(candidates, r.stylesheets...)
	candidates = append(candidates, options.Stylesheets...)
	if options.Theme != nil && options.Theme.AssetURL != nil {
		candidates = append(candidates, options.Theme.AssetURL(themeStylesheet))
	}

	out := make([]any, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, href := range candidates {
		href = strings.TrimSpace(href)
		if href == "" {
			continue
		}
		if _, ok := seen[href]; ok {
			continue
		}
		seen[href] = struct{}{}
		out = append(out, href)
	}
	return out
}
