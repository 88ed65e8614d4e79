package themes

import (
	"embed"
	"io/fs"
)

//go:embed bundled/*.yaml
var embeddedThemes embed.FS

// DefaultTheme names the bundled theme.
const DefaultTheme = "default"

// EmbeddedFS returns the bundled theme files. Callers may pass this filesystem
// to LoadFS to use the default configuration.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedThemes, "bundled")
	if err != nil {
		panic(err)
	}
	return sub
}
