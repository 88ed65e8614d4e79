package model

// Decorator enriches a page after its component tree has been built and before
// it reaches a renderer.
type Decorator interface {
	Decorate(*Page) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*Page) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(page *Page) error {
	return fn(page)
}
