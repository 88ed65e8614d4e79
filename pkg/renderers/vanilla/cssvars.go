package vanilla

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-viewkit/pkg/render"
)

var (
	cssVarName  = regexp.MustCompile(`^--[A-Za-z0-9_-]+$`)
	cssVarValue = regexp.MustCompile(`^[A-Za-z0-9 #%.,_()"'/+*-]+$`)
)

// cssVars lists the theme variables that can be written verbatim into a
// <style> block. Entries with characters outside the allow-list are dropped.
func cssVars(theme *render.ThemeConfig) []any {
	names := theme.CSSVarNames()
	vars := make([]any, 0, len(names))
	for _, name := range names {
		value, ok := cssSafeValue(theme.CSSVars[name])
		if !ok || !cssVarName.MatchString(name) {
			continue
		}
		vars = append(vars, map[string]any{"name": name, "value": value})
	}
	return vars
}

func cssSafeValue(raw string) (string, bool) {
	value := strings.TrimSpace(raw)
	if value == "" || !cssVarValue.MatchString(value) {
		return "", false
	}
	if strings.Count(value, `"`)%2 != 0 || strings.Count(value, "'")%2 != 0 {
		return "", false
	}
	if strings.Count(value, "(") != strings.Count(value, ")") {
		return "", false
	}
	return value, true
}
