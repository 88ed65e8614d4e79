package viewkit

import (
	"io/fs"

	vanilla "github.com/goliatone/go-viewkit/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in page layout so callers can reuse or
// extend it without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// EmbeddedAssets exposes the stylesheet bundle served under /assets/.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(viewkit.EmbeddedAssets()),
//	  ),
//	)
func EmbeddedAssets() fs.FS {
	return vanilla.AssetsFS()
}
