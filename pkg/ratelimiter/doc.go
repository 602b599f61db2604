// Package ratelimiter implements a token bucket rate limiter with a
// pluggable storage backend. The mail transport uses it to throttle
// outbound SMTP dispatch; Wait blocks until a token is available instead of
// rejecting, so callers past the rate are delayed rather than failed.
package ratelimiter
