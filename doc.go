// Package viewkit renders small server-side UI components (a labelled date
// field and a "no match" fallback page) as HTML or JSON. Components live in
// pkg/components and build plain render trees from the pkg/ui primitives;
// renderers in pkg/renderers serialise those trees; pkg/orchestrator ties
// lookup, theming, and rendering together. cmd/viewkit serves the components
// over HTTP and renders them from the command line.
package viewkit
