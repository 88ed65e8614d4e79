// Package template defines the renderer-agnostic template contract used by the
// HTML renderer for page layouts, plus the pongo2-backed adapter in the
// gotemplate subpackage.
package template
