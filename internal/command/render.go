package command

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/goliatone/go-viewkit/internal/config"
	"github.com/goliatone/go-viewkit/internal/prompt"
	"github.com/goliatone/go-viewkit/internal/setup"
	"github.com/goliatone/go-viewkit/pkg/orchestrator"
	"github.com/goliatone/go-viewkit/pkg/renderers/vanilla"
)

const (
	paramComponent = "component"
	paramRenderer  = "renderer"
	paramOutput    = "output"
	paramTheme     = "theme"
	paramVariant   = "variant"
	paramFragment  = "fragment"
	paramSanitize  = "sanitize"
	paramTitle     = "title"
)

// RenderOptions lets tests swap the prompt driver and interactivity check.
type RenderOptions struct {
	Driver      prompt.Driver
	Interactive func() bool
}

// Render writes a single component to stdout or a file.
func Render() *cli.Command {
	return RenderWith(RenderOptions{})
}

func RenderWith(opts RenderOptions) *cli.Command {
	if opts.Driver == nil {
		opts.Driver = prompt.NewSurveyDriver()
	}
	if opts.Interactive == nil {
		opts.Interactive = prompt.IsInteractive
	}

	return &cli.Command{
		Name:  "render",
		Usage: "Render a component",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    paramComponent,
				Aliases: []string{"c"},
				Usage:   "Component name; prompts when empty on a terminal",
			},
			&cli.StringFlag{
				Name:    paramRenderer,
				Aliases: []string{"r"},
				Usage:   "Renderer name (vanilla, tree)",
			},
			&cli.StringFlag{
				Name:    paramOutput,
				Aliases: []string{"o"},
				Usage:   "Output file; stdout when empty",
			},
			&cli.StringFlag{
				Name:  paramTheme,
				Usage: "Theme name",
			},
			&cli.StringFlag{
				Name:  paramVariant,
				Usage: "Theme variant",
			},
			&cli.StringFlag{
				Name:  paramTitle,
				Usage: "Document title override",
			},
			&cli.BoolFlag{
				Name:  paramFragment,
				Usage: "Emit component markup without the page layout",
			},
			&cli.BoolFlag{
				Name:  paramSanitize,
				Usage: "Filter markup through the allow-list sanitizer",
			},
		},
		Action: func(ctx *cli.Context) error {
			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse config")
			}
			if ctx.Bool(paramSanitize) {
				conf.Render.Sanitize = true
			}

			var extra []vanilla.Option
			if ctx.Bool(paramFragment) {
				extra = append(extra, vanilla.WithFragmentOnly())
			}

			generator, err := setup.NewOrchestratorFromConfig(conf, extra...)
			if err != nil {
				return errors.WithStack(err)
			}

			component := strings.TrimSpace(ctx.String(paramComponent))
			if component == "" {
				if !opts.Interactive() {
					return errors.New("missing --component flag")
				}
				component, err = prompt.ChooseComponent(ctx.Context, opts.Driver, generator.Components())
				if err != nil {
					return errors.Wrap(err, "could not prompt for component")
				}
			}

			request := orchestrator.Request{
				Component:    component,
				Renderer:     ctx.String(paramRenderer),
				ThemeName:    ctx.String(paramTheme),
				ThemeVariant: ctx.String(paramVariant),
			}
			request.RenderOptions.Title = ctx.String(paramTitle)

			body, err := generator.Generate(ctx.Context, request)
			if err != nil {
				return errors.Wrapf(err, "could not render component '%s'", component)
			}

			return writeOutput(ctx.App.Writer, ctx.String(paramOutput), body)
		},
	}
}

func writeOutput(stdout io.Writer, path string, body []byte) error {
	if path == "" || path == "-" {
		if _, err := stdout.Write(body); err != nil {
			return errors.WithStack(err)
		}
		return nil
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return errors.Wrapf(err, "could not write '%s'", path)
	}
	return nil
}
