// Package ui provides the layout, field, and navigation primitives components
// are assembled from. The markup follows the common 12-column grid convention
// (row/col-<breakpoint>-<span>) and the form-group/form-control class names so
// the output drops into Bootstrap-style stylesheets as well as the embedded
// viewkit.css bundle.
package ui
