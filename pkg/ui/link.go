package ui

import "github.com/goliatone/go-viewkit/pkg/model"

// Link builds an in-application navigation anchor. Browsers follow the href
// natively; a client router may intercept anchors carrying LinkAttr to avoid a
// full reload.
func Link(to, text string) model.Node {
	if to == "" {
		to = "/"
	}
	return model.Element("a",
		[]model.Attr{
			model.A("href", to),
			model.A(LinkAttr, ""),
		},
		model.Text(text),
	)
}
