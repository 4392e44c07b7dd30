package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

func TestDefaultConfig(t *testing.T) {
	cfg := session.DefaultConfig()

	assert.Equal(t, "session_id", cfg.CookieName)
	assert.Equal(t, 0, cfg.CookieMaxAge)
	assert.Equal(t, "/", cfg.CookiePath)
	assert.Empty(t, cfg.CookieDomain)
	assert.False(t, cfg.CookieSecure)
	assert.True(t, cfg.CookieHTTPOnly)
	assert.Empty(t, cfg.Dir)
	assert.Equal(t, session.DefaultFilenameTemplate, cfg.FilenameTemplate)
}

func TestNewFromConfig_OptionsOverrideConfig(t *testing.T) {
	store, _ := newStore(t)

	cfg := session.DefaultConfig()
	cfg.CookieName = "from_config"

	// Options after the config win
	mw := session.NewFromConfig(cfg, store, session.WithCookieName("from_option"))

	handler := mw.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	require.Nil(t, sessionCookie(t, w, "from_config"))
	assert.NotNil(t, sessionCookie(t, w, "from_option"))
}
