package render

import (
	"context"

	"github.com/goliatone/go-viewkit/pkg/model"
)

// Renderer converts a page into a byte representation (HTML, JSON, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, page model.Page, options RenderOptions) ([]byte, error)
}
