// Package handler provides a thin type-safe layer over net/http: handlers
// take a Context and a typed request value and return a Response that knows
// how to render itself. Binding, error handling and cross-cutting
// decorators are attached at Wrap time, keeping the handlers themselves
// free of HTTP plumbing.
package handler
