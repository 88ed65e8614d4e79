package ui

import (
	"strings"

	"github.com/goliatone/go-viewkit/pkg/model"
)

// InputKind is the HTML input type.
type InputKind string

const (
	InputText  InputKind = "text"
	InputDate  InputKind = "date"
	InputEmail InputKind = "email"
)

// Input builds a form control. Empty name and placeholder are omitted.
func Input(kind InputKind, name, placeholder string) model.Node {
	attrs := []model.Attr{
		model.A("type", string(kind)),
	}
	if name = strings.TrimSpace(name); name != "" {
		attrs = append(attrs, model.A("name", name))
	}
	if placeholder != "" {
		attrs = append(attrs, model.A("placeholder", placeholder))
	}
	attrs = append(attrs, model.A("class", ClassFormControl))
	return model.Element("input", attrs)
}

// Label builds a label targeting controlID.
func Label(controlID, text string) model.Node {
	var attrs []model.Attr
	if controlID = strings.TrimSpace(controlID); controlID != "" {
		attrs = append(attrs, model.A("for", controlID))
	}
	attrs = append(attrs, model.A("class", ClassFormLabel))
	return model.Element("label", attrs, model.Text(text))
}

// FieldGroup pairs a label with its control. The control receives controlID as
// its id unless it already carries one, in which case the label targets the
// existing id.
func FieldGroup(controlID, label string, control model.Node) model.Node {
	controlID = strings.TrimSpace(controlID)
	if control.IsElement() {
		existing, ok := control.Attr("id")
		switch {
		case strings.TrimSpace(existing) != "":
			controlID = strings.TrimSpace(existing)
		case controlID == "":
		case ok:
			control = control.WithAttr("id", controlID)
		default:
			control = withLeadingAttr(control, model.A("id", controlID))
		}
	}
	return model.Element("div",
		[]model.Attr{model.A("class", ClassFormGroup)},
		Label(controlID, label),
		control,
	)
}

func withLeadingAttr(node model.Node, attr model.Attr) model.Node {
	attrs := make([]model.Attr, 0, len(node.Attrs)+1)
	attrs = append(attrs, attr)
	attrs = append(attrs, node.Attrs...)
	node.Attrs = attrs
	return node
}
