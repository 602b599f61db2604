package cors

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"
)

// DefaultMaxAge is the default preflight cache duration.
const DefaultMaxAge = 12 * time.Hour

// Config configures the CORS middleware.
type Config struct {
	// AllowOrigins is a static list of allowed origins.
	// Use "*" to allow all origins (not allowed with credentials).
	AllowOrigins []string

	// AllowMethods specifies the allowed HTTP methods.
	AllowMethods []string

	// AllowHeaders specifies the allowed request headers.
	AllowHeaders []string

	// AllowCredentials indicates whether credentials (cookies, authorization
	// headers) are allowed. When true the actual origin is echoed, never "*".
	AllowCredentials bool

	// MaxAge specifies how long preflight responses can be cached.
	MaxAge time.Duration
}

// Option configures Config.
type Option func(*Config)

// WithAllowOrigins sets the allowed origins.
func WithAllowOrigins(origins ...string) Option {
	return func(cfg *Config) {
		cfg.AllowOrigins = origins
	}
}

// WithAllowMethods sets the allowed HTTP methods.
func WithAllowMethods(methods ...string) Option {
	return func(cfg *Config) {
		cfg.AllowMethods = methods
	}
}

// WithAllowHeaders sets the allowed request headers.
func WithAllowHeaders(headers ...string) Option {
	return func(cfg *Config) {
		cfg.AllowHeaders = headers
	}
}

// WithAllowCredentials enables credentials support.
func WithAllowCredentials() Option {
	return func(cfg *Config) {
		cfg.AllowCredentials = true
	}
}

// WithMaxAge sets the preflight cache duration.
func WithMaxAge(d time.Duration) Option {
	return func(cfg *Config) {
		cfg.MaxAge = d
	}
}

// New returns middleware that handles Cross-Origin Resource Sharing.
// It answers preflight (OPTIONS) requests and adds CORS headers to
// responses for allow-listed origins. Requests from other origins pass
// through without CORS headers, leaving the browser to block them.
func New(opts ...Option) func(http.Handler) http.Handler {
	cfg := &Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       DefaultMaxAge,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	allowMethodsStr := strings.Join(cfg.AllowMethods, ", ")
	allowHeadersStr := strings.Join(cfg.AllowHeaders, ", ")
	maxAgeStr := strconv.Itoa(int(cfg.MaxAge.Seconds()))
	hasWildcard := slices.Contains(cfg.AllowOrigins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			// Not a CORS request.
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !originAllowed(origin, cfg, hasWildcard) {
				next.ServeHTTP(w, r)
				return
			}

			headers := w.Header()
			headers.Add("Vary", "Origin")

			if cfg.AllowCredentials || !hasWildcard {
				headers.Set("Access-Control-Allow-Origin", origin)
			} else {
				headers.Set("Access-Control-Allow-Origin", "*")
			}

			if cfg.AllowCredentials {
				headers.Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions {
				headers.Add("Vary", "Access-Control-Request-Method")
				headers.Add("Vary", "Access-Control-Request-Headers")
				headers.Set("Access-Control-Allow-Methods", allowMethodsStr)
				headers.Set("Access-Control-Allow-Headers", allowHeadersStr)
				if cfg.MaxAge > 0 {
					headers.Set("Access-Control-Max-Age", maxAgeStr)
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, cfg *Config, hasWildcard bool) bool {
	if hasWildcard {
		return true
	}
	return slices.Contains(cfg.AllowOrigins, origin)
}
