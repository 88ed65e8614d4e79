package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/goliatone/go-viewkit/pkg/model"
	"github.com/goliatone/go-viewkit/pkg/orchestrator"
	"github.com/goliatone/go-viewkit/pkg/render"
)

const snapshotRendererName = "page-snapshot"

type snapshotRenderer struct {
	path string
}

func (r *snapshotRenderer) Name() string {
	return snapshotRendererName
}

func (r *snapshotRenderer) ContentType() string {
	return "application/json"
}

func (r *snapshotRenderer) Render(_ context.Context, page model.Page, _ render.RenderOptions) ([]byte, error) {
	payload, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return nil, err
	}
	payload = append(payload, '\n')
	if err := os.WriteFile(r.path, payload, 0o644); err != nil {
		return nil, err
	}
	return payload, nil
}

func main() {
	var (
		component  = flag.String("component", "date-field", "component to snapshot")
		outputPath = flag.String("output", "pkg/renderers/tree/testdata/date_field.json", "output path for the serialized page")
	)
	flag.Parse()

	registry := render.NewRegistry()
	registry.MustRegister(&snapshotRenderer{path: *outputPath})

	orch := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(snapshotRendererName),
	)

	_, err := orch.Generate(context.Background(), orchestrator.Request{
		Component: *component,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to snapshot page: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Wrote %s page snapshot to %s\n", *component, *outputPath)
}
