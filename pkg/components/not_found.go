package components

import (
	"github.com/goliatone/go-viewkit/pkg/model"
	"github.com/goliatone/go-viewkit/pkg/ui"
)

const (
	NotFoundHeading  = "Nothing to see here!"
	NotFoundLinkText = "Go to the login page"
	// LoginPath is the application's entry route.
	LoginPath = "/"
)

// NotFoundPage renders the fallback shown when no route matches.
func NotFoundPage() model.Node {
	return ui.Container(
		ui.Heading(2, NotFoundHeading),
		ui.Paragraph(
			ui.Link(LoginPath, NotFoundLinkText),
		),
	)
}
