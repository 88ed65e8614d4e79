// Package orchestrator wires the component registry → theme selection →
// renderer sequence, providing dependency injection friendly helpers for
// consumers (the HTTP server and CLI) that prefer a single entry point.
package orchestrator
