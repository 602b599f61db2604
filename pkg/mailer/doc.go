// Package mailer abstracts outbound mail delivery behind the Transport
// interface with two implementations: an SMTP transport built on
// github.com/wneessen/go-mail, and a file-writing transport for local
// development.
//
// The SMTP transport enforces the service's delivery constraints: a single
// open connection at a time and a token-bucket throttle (default 5 sends
// per 20 seconds) that delays rather than rejects. Failures are classified
// into sentinel error categories (authentication, host resolution,
// connection, generic send) so callers can map them to user-facing
// messages without inspecting provider internals.
package mailer
