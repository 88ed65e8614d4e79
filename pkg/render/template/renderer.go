package template

import (
	"io"
)

// TemplateRenderer is the seam renderers rely on to execute layouts. The
// gotemplate package provides the default pongo2 implementation; tests and
// callers can substitute their own.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
