package render

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the page.
type RenderOptions struct {
	// Title overrides the page title. Renderers fall back to Page.Title.
	Title string
	// Stylesheets are linked from the document head in order. Duplicates are
	// the caller's responsibility.
	Stylesheets []string
	// Theme carries the resolved theme selection. Nil means unthemed output.
	Theme *ThemeConfig
}
