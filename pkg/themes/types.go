package themes

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// File mirrors the on-disk theme document.
type File struct {
	Name      string                 `json:"name" yaml:"name"`
	Version   string                 `json:"version" yaml:"version"`
	Tokens    map[string]string      `json:"tokens" yaml:"tokens"`
	Templates map[string]string      `json:"templates" yaml:"templates"`
	Assets    AssetsFile             `json:"assets" yaml:"assets"`
	Variants  map[string]VariantFile `json:"variants" yaml:"variants"`
}

type AssetsFile struct {
	Prefix string            `json:"prefix" yaml:"prefix"`
	Files  map[string]string `json:"files" yaml:"files"`
}

type VariantFile struct {
	Tokens    map[string]string `json:"tokens" yaml:"tokens"`
	Templates map[string]string `json:"templates" yaml:"templates"`
	Assets    AssetsFile        `json:"assets" yaml:"assets"`
}

// Manifest converts the document into a go-theme manifest.
func (f File) Manifest() *theme.Manifest {
	manifest := &theme.Manifest{
		Name:      strings.TrimSpace(f.Name),
		Version:   strings.TrimSpace(f.Version),
		Tokens:    f.Tokens,
		Templates: f.Templates,
		Assets: theme.Assets{
			Prefix: f.Assets.Prefix,
			Files:  f.Assets.Files,
		},
	}
	if len(f.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(f.Variants))
		for name, variant := range f.Variants {
			manifest.Variants[strings.TrimSpace(name)] = theme.Variant{
				Tokens:    variant.Tokens,
				Templates: variant.Templates,
				Assets: theme.Assets{
					Prefix: variant.Assets.Prefix,
					Files:  variant.Assets.Files,
				},
			}
		}
	}
	return manifest
}
