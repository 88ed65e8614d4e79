package vanilla

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	fragmentPolicyOnce sync.Once
	fragmentPolicy     *bluemonday.Policy
)

// sanitizeFragment strips anything outside the markup the ui primitives emit.
// Custom components registered by callers pass through the same allow-list.
func sanitizeFragment(raw []byte) []byte {
	if len(raw) == 0 {
		return raw
	}
	return fragmentSanitizer().SanitizeBytes(raw)
}

func fragmentSanitizer() *bluemonday.Policy {
	fragmentPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"div", "span", "p", "h1", "h2", "h3", "h4", "h5", "h6",
			"a", "label", "input", "small", "strong", "em",
		)
		policy.AllowAttrs("class", "id").Globally()
		policy.AllowDataAttributes()

		policy.AllowAttrs("href").OnElements("a")
		policy.AllowRelativeURLs(true)
		policy.AllowURLSchemes("http", "https", "mailto")

		policy.AllowAttrs("for").OnElements("label")
		policy.AllowAttrs(
			"type", "name", "placeholder", "value", "min", "max",
			"required", "disabled", "readonly", "autocomplete",
		).OnElements("input")

		fragmentPolicy = policy
	})
	return fragmentPolicy
}
