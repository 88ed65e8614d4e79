package components

// Canonical component names registered by Default.
const (
	NameDateField = "date-field"
	NameNotFound  = "not-found"
)
