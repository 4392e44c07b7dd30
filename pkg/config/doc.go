// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// deliver a small API that:
//
//   - Loads values from one or multiple `.env` files (falling back to the
//     default `.env` in the current working directory).
//   - Parses the environment into any Go struct using `env` field tags.
//   - Caches each successfully loaded configuration type so it is only parsed
//     once for the lifetime of the process.
//   - Exposes MustLoad for configuration the application cannot start
//     without, and ResetCache for tests.
//
// # Usage
//
// Annotate a struct with `env` tags and load it:
//
//	type SessionConfig struct {
//	    CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"session_id"`
//	    Dir        string `env:"SESSION_DIR"`
//	}
//
//	var cfg SessionConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Subsequent calls to config.Load for the same struct type are served from
// the in-memory cache without re-parsing.
package config
