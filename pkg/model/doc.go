// Package model defines the render tree produced by components and consumed by
// renderers. A tree is plain data: elements carry an ordered attribute list and
// children, text nodes carry their content. Components build trees through the
// primitives in pkg/ui; renderers serialise them to HTML or JSON. Because trees
// are values, rendering the same component twice yields structurally equal
// output that can be compared with go-cmp or encoded into deterministic JSON
// snapshots.
package model
