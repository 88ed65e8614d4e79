package vanilla

// ChromeClass is a typed identifier for the classes the page layout applies
// around component markup.
type ChromeClass string

const (
	ClassPage    ChromeClass = "viewkit-page"
	ClassContent ChromeClass = "viewkit-content"
)

// Default*Class values are applied when no theme override is present.
const (
	DefaultPageClass    = string(ClassPage)
	DefaultContentClass = string(ClassContent)
)
