// Package themes loads theme manifests from JSON or YAML files and exposes them
// as a go-theme selector. Each file describes one theme: tokens become CSS
// variables, templates override layout partials, and assets map keys to URLs
// under a prefix. Variants layer their own tokens, templates, and assets on top.
package themes
