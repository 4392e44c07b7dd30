package session

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/cookie"
)

// Option is a functional option for configuring the Middleware
type Option func(*Middleware)

// WithConfig sets custom configuration
func WithConfig(config Config) Option {
	return func(m *Middleware) {
		m.config = config
	}
}

// WithCookieName sets the session cookie name
func WithCookieName(name string) Option {
	return func(m *Middleware) {
		m.config.CookieName = name
	}
}

// WithCookieManager sets the cookie manager used to read and write the
// session cookie, plus extra per-cookie options appended on every write
func WithCookieManager(cookies *cookie.Manager, opts ...cookie.Option) Option {
	return func(m *Middleware) {
		m.cookies = cookies
		m.cookieOptions = opts
	}
}

// WithCookieExpires sets an explicit Expires timestamp on the session cookie
func WithCookieExpires(expires time.Time) Option {
	return func(m *Middleware) {
		m.cookieExpires = expires
	}
}

// WithErrorHandler sets the response rendered when session resolution fails
func WithErrorHandler(handler ErrorHandler) Option {
	return func(m *Middleware) {
		m.errorHandler = handler
	}
}

// WithLogger sets the logger for save failures that occur after the response
// headers are committed
func WithLogger(log *slog.Logger) Option {
	return func(m *Middleware) {
		m.log = log
	}
}
