package session

// Session is per-client state addressed by an opaque identifier and persisted
// across requests by a Store. It embeds Data, so all tracked mapping
// operations are available directly on the session.
//
// A session is owned by a single request: the middleware creates or loads it,
// hands it to the downstream handler by reference and persists it when the
// response completes. Session objects are not safe for concurrent use.
type Session struct {
	Data

	// ID is the opaque identifier naming the backing record. Stores produce
	// 40-hex-character identifiers; see ValidKey.
	ID string

	// IsNew is true when no backing record existed for this session. New
	// sessions are persisted on the next save checkpoint even without
	// mutations.
	IsNew bool
}

// NewSession creates a session over a copy of values. Stores call this;
// application code normally receives sessions from a Store or the request
// context instead of constructing them.
func NewSession(values map[string]any, id string, isNew bool) *Session {
	return &Session{
		Data:  *NewData(values),
		ID:    id,
		IsNew: isNew,
	}
}

// ShouldSave reports whether the session needs to be written back: it is
// either freshly created or has been structurally modified.
func (s *Session) ShouldSave() bool {
	return s.Modified() || s.IsNew
}

// Copy creates an independent flat copy carrying the identifier, the
// freshly-created flag and the current modified flag. Shadows the promoted
// Data.Copy, which would lose everything but the entries.
func (s *Session) Copy() *Session {
	return &Session{
		Data:  *s.Data.Copy(),
		ID:    s.ID,
		IsNew: s.IsNew,
	}
}
