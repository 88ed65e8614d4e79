package command

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/goliatone/go-viewkit/pkg/orchestrator"
)

// List prints the registered components and renderers.
func List() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List registered components and renderers",
		Action: func(ctx *cli.Context) error {
			generator := orchestrator.New()

			w := tabwriter.NewWriter(ctx.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "COMPONENT\tSTATUS\tTITLE")
			registry := generator.Components()
			for _, name := range registry.Names() {
				descriptor, _ := registry.Descriptor(name)
				fmt.Fprintf(w, "%s\t%d\t%s\n", name, descriptor.Status, descriptor.Title)
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, "RENDERER\tCONTENT TYPE")
			for _, name := range generator.Renderers().List() {
				renderer, err := generator.Renderers().Get(name)
				if err != nil {
					return errors.WithStack(err)
				}
				fmt.Fprintf(w, "%s\t%s\n", name, renderer.ContentType())
			}

			return errors.WithStack(w.Flush())
		},
	}
}
