package gotemplate

import (
	"strings"

	"github.com/flosch/pongo2/v6"
)

func registerBuiltinFilters() {
	builtins := map[string]pongo2.FilterFunction{
		"classlist": filterClassList,
		"trim":      filterTrim,
	}
	for name, fn := range builtins {
		if !pongo2.FilterExists(name) {
			_ = pongo2.RegisterFilter(name, fn)
		}
	}
}

func adaptFilter(name string, fn FilterFunc) pongo2.FilterFunction {
	return func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var arg any
		if param != nil {
			arg = param.Interface()
		}
		result, err := fn(in.Interface(), arg)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	}
}

// filterClassList joins class names from a string or list, dropping blanks
// and repeats while keeping first-seen order.
func filterClassList(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	var tokens []string
	if !in.IsString() && in.CanSlice() {
		for i := 0; i < in.Len(); i++ {
			tokens = append(tokens, strings.Fields(in.Index(i).String())...)
		}
	} else {
		tokens = strings.Fields(in.String())
	}

	seen := make(map[string]struct{}, len(tokens))
	out := tokens[:0]
	for _, token := range tokens {
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return pongo2.AsValue(strings.Join(out, " ")), nil
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}
