package session

// Config holds session middleware and store configuration
type Config struct {
	// CookieName is the name of the session cookie (default: "session_id")
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"session_id"`

	// CookieMaxAge is the cookie lifetime in seconds (0 = session cookie)
	CookieMaxAge int `env:"SESSION_COOKIE_MAX_AGE" envDefault:"0"`

	CookiePath   string `env:"SESSION_COOKIE_PATH" envDefault:"/"`
	CookieDomain string `env:"SESSION_COOKIE_DOMAIN" envDefault:""`

	// CookieSecure enables the Secure flag on session cookies (recommended for production)
	CookieSecure   bool `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
	CookieHTTPOnly bool `env:"SESSION_COOKIE_HTTP_ONLY" envDefault:"true"`

	// Dir is the FilesystemStore directory (empty = OS temp directory)
	Dir string `env:"SESSION_DIR" envDefault:""`

	// FilenameTemplate is the backing file naming pattern for the FilesystemStore
	FilenameTemplate string `env:"SESSION_FILENAME_TEMPLATE" envDefault:"sessionkit_%s.sess"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		CookieName:       "session_id",
		CookieMaxAge:     0,
		CookiePath:       "/",
		CookieDomain:     "",
		CookieSecure:     false,
		CookieHTTPOnly:   true,
		Dir:              "",
		FilenameTemplate: DefaultFilenameTemplate,
	}
}

// NewFromConfig creates a Middleware over store from the provided Config.
func NewFromConfig(cfg Config, store Store, opts ...Option) *Middleware {
	configOpts := []Option{
		WithConfig(cfg),
	}

	configOpts = append(configOpts, opts...)

	return NewMiddleware(store, configOpts...)
}
