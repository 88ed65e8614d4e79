package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-viewkit/pkg/components"
	"github.com/goliatone/go-viewkit/pkg/model"
	"github.com/goliatone/go-viewkit/pkg/render"
	"github.com/goliatone/go-viewkit/pkg/renderers/tree"
	"github.com/goliatone/go-viewkit/pkg/renderers/vanilla"
)

const defaultRendererName = "vanilla"

// ErrComponentNotFound is returned when a request names an unknown component.
var ErrComponentNotFound = errors.New("orchestrator: component not found")

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithComponents injects a component registry.
func WithComponents(registry *components.Registry) Option {
	return func(o *Orchestrator) {
		o.components = registry
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithVanillaOptions forwards options to the default vanilla renderer. Ignored
// when a registry is injected.
func WithVanillaOptions(options ...vanilla.Option) Option {
	return func(o *Orchestrator) {
		o.vanillaOptions = append(o.vanillaOptions, options...)
	}
}

// WithDecorators registers decorators that run against each page before
// rendering.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithThemeSelector passes a go-theme selector so theme/variant choices can be
// resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeFallbacks overrides the partials used when a theme does not
// provide its own.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		if len(fallbacks) == 0 {
			return
		}
		o.themeFallbacks = make(map[string]string, len(fallbacks))
		for key, value := range fallbacks {
			o.themeFallbacks[key] = value
		}
	}
}

// Orchestrator coordinates component lookup, theming, and rendering. It
// applies sensible defaults (built-in components, vanilla and tree renderers)
// while remaining open to dependency injection.
type Orchestrator struct {
	components      *components.Registry
	registry        *render.Registry
	defaultRenderer string
	vanillaOptions  []vanilla.Option
	decorators      []model.Decorator
	themeSelector   theme.ThemeSelector
	themeFallbacks  map[string]string
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes what to render.
type Request struct {
	// Component names the registered component to render.
	Component string

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant select a theme when a selector is configured.
	// Empty values defer to the selector's defaults.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request overrides. Theme is filled in from the
	// selector when left nil; component stylesheets are prepended.
	RenderOptions render.RenderOptions
}

// Result is the rendered output together with what produced it.
type Result struct {
	Page        model.Page
	Renderer    string
	ContentType string
	Body        []byte
}

// Generate renders the requested component and returns the bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	result, err := o.Render(ctx, req)
	if err != nil {
		return nil, err
	}
	return result.Body, nil
}

// Render executes the component → decorators → theme → renderer sequence.
func (o *Orchestrator) Render(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}

	if req.Component == "" {
		return Result{}, errors.New("orchestrator: component name is required")
	}

	page, ok := o.components.Page(req.Component)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrComponentNotFound, req.Component)
	}

	if err := o.applyDecorators(&page); err != nil {
		return Result{}, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}

	options := req.RenderOptions
	options.Stylesheets = append(o.components.Stylesheets(page.Name), options.Stylesheets...)
	if options.Theme == nil {
		cfg, err := render.ResolveTheme(o.themeSelector, req.ThemeName, req.ThemeVariant, o.themeFallbacks)
		if err != nil {
			return Result{}, fmt.Errorf("orchestrator: resolve theme: %w", err)
		}
		options.Theme = cfg
	}

	body, err := renderer.Render(ctx, page, options)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render output: %w", err)
	}

	return Result{
		Page:        page,
		Renderer:    renderer.Name(),
		ContentType: renderer.ContentType(),
		Body:        body,
	}, nil
}

// Components exposes the component registry in use.
func (o *Orchestrator) Components() *components.Registry {
	return o.components
}

// Renderers exposes the renderer registry in use.
func (o *Orchestrator) Renderers() *render.Registry {
	return o.registry
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDecorators(page *model.Page) error {
	if len(o.decorators) == 0 || page == nil {
		return nil
	}
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(page); err != nil {
			return fmt.Errorf("orchestrator: decorate page: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.components == nil {
		o.components = components.Default()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New(o.vanillaOptions...)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
		o.registry.MustRegister(tree.New())
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.themeFallbacks == nil {
		o.themeFallbacks = render.DefaultPartials()
	}

	o.defaultsApplied = true
}
