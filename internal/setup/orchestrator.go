package setup

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/goliatone/go-viewkit/internal/config"
	"github.com/goliatone/go-viewkit/pkg/orchestrator"
	"github.com/goliatone/go-viewkit/pkg/renderers/vanilla"
)

// NewOrchestratorFromConfig wires the theme selector and vanilla renderer
// options described by conf. Extra vanilla options are applied last.
func NewOrchestratorFromConfig(conf *config.Config, extra ...vanilla.Option) (*orchestrator.Orchestrator, error) {
	if conf == nil {
		return nil, errors.New("config is required")
	}

	selector, err := conf.Theme.Selector()
	if err != nil {
		return nil, errors.Wrap(err, "could not configure theme selector from config")
	}

	var vanillaOptions []vanilla.Option
	if conf.Render.DefaultStyles {
		vanillaOptions = append(vanillaOptions, vanilla.WithDefaultStyles())
	}
	if conf.Render.Sanitize {
		vanillaOptions = append(vanillaOptions, vanilla.WithSanitizer())
	}
	if dir := strings.TrimSpace(conf.Render.TemplatesDir); dir != "" {
		vanillaOptions = append(vanillaOptions, vanilla.WithTemplatesDir(dir))
	}
	vanillaOptions = append(vanillaOptions, extra...)

	generator := orchestrator.New(
		orchestrator.WithThemeSelector(selector),
		orchestrator.WithDefaultRenderer(conf.Render.Renderer),
		orchestrator.WithVanillaOptions(vanillaOptions...),
	)

	if name := strings.TrimSpace(conf.Render.Renderer); name != "" && !generator.Renderers().Has(name) {
		return nil, errors.Errorf("unknown renderer '%s' (available: %s)", name, strings.Join(generator.Renderers().List(), ", "))
	}

	return generator, nil
}
