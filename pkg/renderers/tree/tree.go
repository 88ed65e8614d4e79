// Package tree renders pages as JSON so clients can hydrate or inspect the
// component tree without parsing HTML.
package tree

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-viewkit/pkg/model"
	"github.com/goliatone/go-viewkit/pkg/render"
)

// Name is the registry name of the JSON renderer.
const Name = "tree"

type Option func(*Renderer)

// WithIndent pretty-prints the payload using the given indent string.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

type Renderer struct {
	indent string
}

// New constructs the JSON tree renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

type payload struct {
	Name   string     `json:"name"`
	Title  string     `json:"title,omitempty"`
	Status int        `json:"status"`
	Theme  string     `json:"theme,omitempty"`
	Root   model.Node `json:"root"`
}

func (r *Renderer) Render(ctx context.Context, page model.Page, options render.RenderOptions) ([]byte, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	out := payload{
		Name:   page.Name,
		Title:  page.Title,
		Status: page.Status,
		Root:   page.Root,
	}
	if title := strings.TrimSpace(options.Title); title != "" {
		out.Title = title
	}
	if options.Theme != nil {
		out.Theme = options.Theme.Theme
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if r.indent != "" {
		enc.SetIndent("", r.indent)
	}
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("tree renderer: encode page: %w", err)
	}
	return buf.Bytes(), nil
}
