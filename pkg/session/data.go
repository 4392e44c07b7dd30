package session

import "maps"

// Data is a string-keyed value container that tracks whether any mutating
// operation has been applied to it since construction. Every structural
// mutation (Set, Delete, Clear, Pop, PopItem, SetDefault, Update) flips the
// modified flag as a side effect, even when the operation changed nothing —
// setting a key to its current value or popping a missing key still counts.
//
// Mutations of values nested inside stored entries are not observed; callers
// changing a stored slice or map in place must call MarkModified themselves.
type Data struct {
	values   map[string]any
	modified bool
}

// NewData creates a Data container seeded with a copy of values. The modified
// flag starts false regardless of the seed contents.
func NewData(values map[string]any) *Data {
	d := &Data{values: make(map[string]any, len(values))}
	maps.Copy(d.values, values)
	return d
}

// Get retrieves a value by key.
func (d *Data) Get(key string) (any, bool) {
	val, ok := d.values[key]
	return val, ok
}

// GetString retrieves a string value by key.
func (d *Data) GetString(key string) (string, bool) {
	val, ok := d.values[key]
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// GetInt retrieves an int value by key. Numeric values decoded as int64 or
// float64 are converted.
func (d *Data) GetInt(key string) (int, bool) {
	val, ok := d.values[key]
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// GetBool retrieves a bool value by key.
func (d *Data) GetBool(key string) (bool, bool) {
	val, ok := d.values[key]
	if !ok {
		return false, false
	}
	b, ok := val.(bool)
	return b, ok
}

// Len returns the number of stored entries.
func (d *Data) Len() int {
	return len(d.values)
}

// Keys returns the stored keys in unspecified order.
func (d *Data) Keys() []string {
	keys := make([]string, 0, len(d.values))
	for k := range d.values {
		keys = append(keys, k)
	}
	return keys
}

// Map returns a flat copy of the stored entries. Mutating the returned map
// does not affect the container or its modified flag.
func (d *Data) Map() map[string]any {
	m := make(map[string]any, len(d.values))
	maps.Copy(m, d.values)
	return m
}

// Modified reports whether any mutating operation has occurred since
// construction. The flag is never cleared; reconstruct the container to
// reset it.
func (d *Data) Modified() bool {
	return d.modified
}

// MarkModified sets the modified flag by hand. Needed after in-place changes
// to values nested inside stored entries, which the container cannot see.
func (d *Data) MarkModified() {
	d.modified = true
}

// Set stores a value under key.
func (d *Data) Set(key string, value any) {
	d.values[key] = value
	d.modified = true
}

// Delete removes the entry under key.
func (d *Data) Delete(key string) {
	delete(d.values, key)
	d.modified = true
}

// Clear removes all entries.
func (d *Data) Clear() {
	clear(d.values)
	d.modified = true
}

// Pop removes and returns the value under key. The modified flag flips even
// when the key was absent.
func (d *Data) Pop(key string) (any, bool) {
	defer func() { d.modified = true }()
	val, ok := d.values[key]
	if ok {
		delete(d.values, key)
	}
	return val, ok
}

// PopItem removes and returns an arbitrary entry. The modified flag flips
// even when the container was empty.
func (d *Data) PopItem() (key string, value any, ok bool) {
	defer func() { d.modified = true }()
	for k, v := range d.values {
		delete(d.values, k)
		return k, v, true
	}
	return "", nil, false
}

// SetDefault returns the value under key, storing and returning fallback when
// the key was absent. The modified flag flips either way.
func (d *Data) SetDefault(key string, fallback any) any {
	defer func() { d.modified = true }()
	if val, ok := d.values[key]; ok {
		return val
	}
	d.values[key] = fallback
	return fallback
}

// Update merges all entries of values into the container.
func (d *Data) Update(values map[string]any) {
	maps.Copy(d.values, values)
	d.modified = true
}

// Copy creates an independent flat copy preserving the current entries and
// the current modified flag.
func (d *Data) Copy() *Data {
	c := NewData(d.values)
	c.modified = d.modified
	return c
}
