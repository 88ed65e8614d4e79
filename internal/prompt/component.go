package prompt

import (
	"context"
	"fmt"

	"github.com/goliatone/go-viewkit/pkg/components"
)

// ChooseComponent asks the user to pick a registered component.
func ChooseComponent(ctx context.Context, driver Driver, registry *components.Registry) (string, error) {
	if driver == nil {
		return "", fmt.Errorf("prompt: driver is required")
	}
	names := registry.Names()
	if len(names) == 0 {
		return "", ErrNoOptions
	}

	descriptions := make(map[string]string, len(names))
	for _, name := range names {
		if descriptor, ok := registry.Descriptor(name); ok {
			descriptions[name] = descriptor.Title
		}
	}

	choice, err := driver.Select(ctx, SelectConfig{
		Message:      "Component to render:",
		Options:      names,
		Descriptions: descriptions,
	})
	if err != nil {
		return "", err
	}
	if _, ok := registry.Descriptor(choice); !ok {
		return "", fmt.Errorf("prompt: unknown component %q", choice)
	}
	return choice, nil
}
