package ui

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-viewkit/pkg/model"
)

// Container wraps children in a plain div.
func Container(children ...model.Node) model.Node {
	return model.Element("div", nil, children...)
}

// Row starts a grid row.
func Row(children ...model.Node) model.Node {
	return model.Element("div", []model.Attr{model.A("class", ClassRow)}, children...)
}

// Col builds a grid cell spanning span of GridColumns from the default
// breakpoint upwards.
func Col(span int, children ...model.Node) model.Node {
	return ColAt(DefaultBreakpoint, span, children...)
}

// ColAt builds a grid cell for an explicit breakpoint. Unknown breakpoints
// produce a breakpoint-less class; spans are clamped to 1..GridColumns.
func ColAt(breakpoint string, span int, children ...model.Node) model.Node {
	return model.Element("div", []model.Attr{model.A("class", ColumnClass(breakpoint, span))}, children...)
}

// ColumnClass returns the class for a column span, e.g. "col-md-4".
func ColumnClass(breakpoint string, span int) string {
	span = clampSpan(span)
	parts := []string{ClassColumnPrefix}
	bp := strings.ToLower(strings.TrimSpace(breakpoint))
	if _, ok := breakpoints[bp]; ok {
		parts = append(parts, bp)
	}
	parts = append(parts, strconv.Itoa(span))
	return strings.Join(parts, "-")
}

func clampSpan(span int) int {
	if span < 1 {
		return 1
	}
	if span > GridColumns {
		return GridColumns
	}
	return span
}

// Heading builds an h1..h6 element. Levels outside that range are clamped.
func Heading(level int, text string) model.Node {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return model.Element("h"+strconv.Itoa(level), nil, model.Text(text))
}

// Paragraph wraps children in a p element.
func Paragraph(children ...model.Node) model.Node {
	return model.Element("p", nil, children...)
}
