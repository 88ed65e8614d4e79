package ui

// Class names emitted by the primitives.
const (
	ClassRow          = "row"
	ClassFormGroup    = "form-group"
	ClassFormLabel    = "form-label"
	ClassFormControl  = "form-control"
	ClassColumnPrefix = "col"
)

// LinkAttr marks anchors that a client-side router may intercept.
const LinkAttr = "data-link"

// GridColumns is the number of columns in a row.
const GridColumns = 12

// ColumnSpanThird spans roughly one third of the row.
const ColumnSpanThird = 4

// DefaultBreakpoint is the breakpoint Col applies its span from.
const DefaultBreakpoint = "md"

var breakpoints = map[string]struct{}{
	"sm":  {},
	"md":  {},
	"lg":  {},
	"xl":  {},
	"xxl": {},
}
