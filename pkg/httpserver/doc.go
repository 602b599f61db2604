// Package httpserver wraps net/http.Server with functional options,
// graceful shutdown on context cancellation or SIGINT/SIGTERM, and optional
// start/stop hooks for logging.
package httpserver
