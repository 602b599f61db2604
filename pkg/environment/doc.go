// Package environment defines the application environment type and helpers
// for branching on it. The service exposes delivery error details only in
// development, so the distinction is part of the response contract rather
// than an observability concern.
package environment
