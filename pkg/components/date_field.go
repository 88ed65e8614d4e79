package components

import (
	"github.com/goliatone/go-viewkit/pkg/model"
	"github.com/goliatone/go-viewkit/pkg/ui"
)

const (
	DateFieldID          = "dob"
	DateFieldLabel       = "Select Date"
	DateFieldPlaceholder = "Date of Birth"
)

// DateField renders a labelled date input inside a one-third width grid cell.
// The control is not bound to any form state.
func DateField() model.Node {
	return ui.Container(
		ui.Row(
			ui.Col(ui.ColumnSpanThird,
				ui.FieldGroup(DateFieldID, DateFieldLabel,
					ui.Input(ui.InputDate, DateFieldID, DateFieldPlaceholder),
				),
			),
		),
	)
}
