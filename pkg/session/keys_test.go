package session_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

func TestValidKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected bool
	}{
		{
			name:     "lowercase hex",
			key:      strings.Repeat("a1", 20),
			expected: true,
		},
		{
			name:     "uppercase hex",
			key:      strings.Repeat("A1", 20),
			expected: true,
		},
		{
			name:     "mixed case hex",
			key:      strings.Repeat("aF", 20),
			expected: true,
		},
		{
			name:     "empty string",
			key:      "",
			expected: false,
		},
		{
			name:     "39 characters",
			key:      strings.Repeat("a", 39),
			expected: false,
		},
		{
			name:     "41 characters",
			key:      strings.Repeat("a", 41),
			expected: false,
		},
		{
			name:     "non-hex character",
			key:      strings.Repeat("a", 39) + "g",
			expected: false,
		},
		{
			name:     "path traversal attempt",
			key:      "../../../../../../etc/passwd",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, session.ValidKey(tt.key))
		})
	}
}

func TestGenerateKey(t *testing.T) {
	t.Run("produces valid lowercase keys", func(t *testing.T) {
		key, err := session.GenerateKey("")
		require.NoError(t, err)

		assert.True(t, session.ValidKey(key))
		assert.Equal(t, strings.ToLower(key), key)
	})

	t.Run("consecutive keys differ", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			key, err := session.GenerateKey("")
			require.NoError(t, err)
			assert.False(t, seen[key], "duplicate key %s", key)
			seen[key] = true
		}
	})

	t.Run("salted keys stay valid", func(t *testing.T) {
		key, err := session.GenerateKey("some-salt")
		require.NoError(t, err)

		assert.True(t, session.ValidKey(key))
	})
}
