package vanilla

import (
	"bytes"
	"fmt"

	g "maragu.dev/gomponents"

	"github.com/goliatone/go-viewkit/pkg/model"
)

// RenderFragment serialises a render tree to HTML without any page chrome.
func RenderFragment(node model.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := toComponent(node).Render(&buf); err != nil {
		return nil, fmt.Errorf("vanilla renderer: render fragment: %w", err)
	}
	return buf.Bytes(), nil
}

func toComponent(node model.Node) g.Node {
	switch node.Kind {
	case model.NodeKindText:
		return g.Text(node.Text)
	case model.NodeKindElement:
		if node.Tag == "" {
			return g.Group(toComponents(node.Children))
		}
		children := make([]g.Node, 0, len(node.Attrs)+len(node.Children))
		for _, attr := range node.Attrs {
			if attr.Value == "" {
				children = append(children, g.Attr(attr.Name))
				continue
			}
			children = append(children, g.Attr(attr.Name, attr.Value))
		}
		children = append(children, toComponents(node.Children)...)
		return g.El(node.Tag, children...)
	default:
		return g.Group(nil)
	}
}

func toComponents(nodes []model.Node) []g.Node {
	out := make([]g.Node, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, toComponent(node))
	}
	return out
}
