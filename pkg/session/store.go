package session

// Store defines the interface for session persistence. A FilesystemStore
// ships out of the box; application developers are encouraged to implement
// their own stores for other backends.
//
// Stores do not expire sessions. Pruning stale records is storage specific
// and belongs in an external scheduled job (for the filesystem store, by file
// modification time).
type Store interface {
	// IsValidKey checks whether key has the identifier format this store
	// accepts.
	IsValidKey(key string) bool

	// GenerateKey produces a fresh session identifier.
	GenerateKey(salt string) (string, error)

	// New returns a session with empty data, a freshly generated identifier
	// and IsNew set.
	New() (*Session, error)

	// Save persists the session's values under its identifier, overwriting
	// any existing record.
	Save(session *Session) error

	// SaveIfModified persists the session only when it reports ShouldSave.
	// Callers should prefer this over Save.
	SaveIfModified(session *Session) error

	// Delete removes the backing record. Deleting a session without a record
	// succeeds as a no-op.
	Delete(session *Session) error

	// Get loads the session stored under id. An invalid or unknown id is not
	// an error: the store silently substitutes a fresh session (with a new
	// identifier) instead. Read or decode failures on an existing record do
	// propagate.
	Get(id string) (*Session, error)
}
