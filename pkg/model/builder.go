package model

// Builder produces a render tree. Components are usually plain functions and
// can be adapted with BuilderFunc.
type Builder interface {
	Build() Node
}

// BuilderFunc adapts a function into a Builder.
type BuilderFunc func() Node

// Build calls the underlying function.
func (fn BuilderFunc) Build() Node {
	if fn == nil {
		return Node{}
	}
	return fn()
}
