package components

import (
	"net/http"

	"github.com/goliatone/go-viewkit/pkg/model"
)

// DefaultStylesheet is the embedded stylesheet path the HTTP layer serves.
const DefaultStylesheet = "/assets/viewkit.css"

// Default constructs a registry pre-populated with the built-in components.
func Default() *Registry {
	registry := New()

	registry.MustRegister(NameDateField, Descriptor{
		Title:       DateFieldLabel,
		Status:      http.StatusOK,
		Builder:     model.BuilderFunc(DateField),
		Stylesheets: []string{DefaultStylesheet},
	})
	registry.MustRegister(NameNotFound, Descriptor{
		Title:       "Page Not Found",
		Status:      http.StatusNotFound,
		Builder:     model.BuilderFunc(NotFoundPage),
		Stylesheets: []string{DefaultStylesheet},
	})

	return registry
}
