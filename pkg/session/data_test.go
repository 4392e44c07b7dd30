package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

func TestData_StartsUnmodified(t *testing.T) {
	d := session.NewData(map[string]any{"user": "alice"})

	assert.False(t, d.Modified())
	assert.Equal(t, 1, d.Len())
}

func TestData_MutationsFlipModified(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *session.Data)
	}{
		{
			name:   "Set",
			mutate: func(d *session.Data) { d.Set("k", "v") },
		},
		{
			name:   "Set existing key to same value",
			mutate: func(d *session.Data) { d.Set("user", "alice") },
		},
		{
			name:   "Delete",
			mutate: func(d *session.Data) { d.Delete("user") },
		},
		{
			name:   "Delete missing key",
			mutate: func(d *session.Data) { d.Delete("ghost") },
		},
		{
			name:   "Clear",
			mutate: func(d *session.Data) { d.Clear() },
		},
		{
			name:   "Pop",
			mutate: func(d *session.Data) { d.Pop("user") },
		},
		{
			name:   "Pop missing key",
			mutate: func(d *session.Data) { d.Pop("ghost") },
		},
		{
			name:   "PopItem",
			mutate: func(d *session.Data) { d.PopItem() },
		},
		{
			name:   "SetDefault on existing key",
			mutate: func(d *session.Data) { d.SetDefault("user", "bob") },
		},
		{
			name:   "SetDefault on missing key",
			mutate: func(d *session.Data) { d.SetDefault("lang", "en") },
		},
		{
			name:   "Update",
			mutate: func(d *session.Data) { d.Update(map[string]any{"a": 1}) },
		},
		{
			name:   "Update with empty map",
			mutate: func(d *session.Data) { d.Update(nil) },
		},
		{
			name:   "MarkModified",
			mutate: func(d *session.Data) { d.MarkModified() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := session.NewData(map[string]any{"user": "alice"})
			require.False(t, d.Modified())

			tt.mutate(d)

			assert.True(t, d.Modified())
		})
	}
}

func TestData_ReadsDoNotFlipModified(t *testing.T) {
	d := session.NewData(map[string]any{"user": "alice", "count": 3, "admin": true})

	_, _ = d.Get("user")
	_, _ = d.GetString("user")
	_, _ = d.GetInt("count")
	_, _ = d.GetBool("admin")
	_ = d.Len()
	_ = d.Keys()
	_ = d.Map()

	assert.False(t, d.Modified())
}

func TestData_ModifiedSticksAfterReads(t *testing.T) {
	d := session.NewData(nil)
	d.Set("k", "v")

	_, _ = d.Get("k")
	_ = d.Map()

	assert.True(t, d.Modified())
}

func TestData_Operations(t *testing.T) {
	t.Run("Pop returns and removes", func(t *testing.T) {
		d := session.NewData(map[string]any{"user": "alice"})

		val, ok := d.Pop("user")
		assert.True(t, ok)
		assert.Equal(t, "alice", val)
		assert.Equal(t, 0, d.Len())

		_, ok = d.Pop("user")
		assert.False(t, ok)
	})

	t.Run("PopItem removes some entry", func(t *testing.T) {
		d := session.NewData(map[string]any{"a": 1, "b": 2})

		key, _, ok := d.PopItem()
		assert.True(t, ok)
		assert.Contains(t, []string{"a", "b"}, key)
		assert.Equal(t, 1, d.Len())
	})

	t.Run("PopItem on empty container", func(t *testing.T) {
		d := session.NewData(nil)

		_, _, ok := d.PopItem()
		assert.False(t, ok)
		assert.True(t, d.Modified())
	})

	t.Run("SetDefault keeps existing value", func(t *testing.T) {
		d := session.NewData(map[string]any{"lang": "de"})

		assert.Equal(t, "de", d.SetDefault("lang", "en"))
		assert.Equal(t, "en", d.SetDefault("fallback", "en"))

		val, ok := d.GetString("fallback")
		assert.True(t, ok)
		assert.Equal(t, "en", val)
	})

	t.Run("Update merges entries", func(t *testing.T) {
		d := session.NewData(map[string]any{"a": 1})
		d.Update(map[string]any{"a": 2, "b": 3})

		a, _ := d.GetInt("a")
		b, _ := d.GetInt("b")
		assert.Equal(t, 2, a)
		assert.Equal(t, 3, b)
	})

	t.Run("typed accessors", func(t *testing.T) {
		d := session.NewData(map[string]any{
			"str":   "text",
			"int":   42,
			"int64": int64(7),
			"float": float64(9),
			"bool":  true,
		})

		s, ok := d.GetString("str")
		assert.True(t, ok)
		assert.Equal(t, "text", s)

		i, ok := d.GetInt("int")
		assert.True(t, ok)
		assert.Equal(t, 42, i)

		i, ok = d.GetInt("int64")
		assert.True(t, ok)
		assert.Equal(t, 7, i)

		i, ok = d.GetInt("float")
		assert.True(t, ok)
		assert.Equal(t, 9, i)

		b, ok := d.GetBool("bool")
		assert.True(t, ok)
		assert.True(t, b)

		_, ok = d.GetInt("str")
		assert.False(t, ok)
		_, ok = d.GetString("missing")
		assert.False(t, ok)
	})
}

func TestData_MapReturnsIndependentCopy(t *testing.T) {
	d := session.NewData(map[string]any{"user": "alice"})

	m := d.Map()
	m["user"] = "mallory"
	m["extra"] = true

	val, _ := d.GetString("user")
	assert.Equal(t, "alice", val)
	assert.Equal(t, 1, d.Len())
	assert.False(t, d.Modified())
}

func TestData_Copy(t *testing.T) {
	t.Run("preserves flag value", func(t *testing.T) {
		clean := session.NewData(map[string]any{"a": 1})
		assert.False(t, clean.Copy().Modified())

		dirty := session.NewData(nil)
		dirty.Set("a", 1)
		assert.True(t, dirty.Copy().Modified())
	})

	t.Run("copies are independent", func(t *testing.T) {
		d := session.NewData(map[string]any{"a": 1})
		c := d.Copy()
		c.Set("b", 2)

		assert.Equal(t, 1, d.Len())
		assert.False(t, d.Modified())
		assert.Equal(t, 2, c.Len())
	})
}

func TestData_SeedIsCopied(t *testing.T) {
	seed := map[string]any{"user": "alice"}
	d := session.NewData(seed)

	seed["user"] = "mallory"

	val, _ := d.GetString("user")
	assert.Equal(t, "alice", val)
}
