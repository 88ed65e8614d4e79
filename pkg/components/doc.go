// Package components holds the built-in presentational components and the
// registry that names them. Components are pure functions returning a
// model.Node; they take no input, hold no state, and cannot fail.
package components
