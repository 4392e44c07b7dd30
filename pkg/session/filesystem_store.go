package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DefaultFilenameTemplate is the filename pattern used for backing files when
// no custom template is configured. The single %s verb is replaced with the
// session identifier.
const DefaultFilenameTemplate = "sessionkit_%s.sess"

// FilesystemStore persists sessions as one file per session in a flat
// directory, like PHP does. Each file holds only the codec-serialized value
// mapping; identifier and flags live in the filename and in memory.
//
// The store keeps no state across calls and is safe for concurrent use, with
// one documented limitation: two concurrent saves for the same identifier
// race and the later write wins in full. Writes go through a temp file and
// rename, so a concurrent reader always sees a complete record, but writers
// are not serialized.
type FilesystemStore struct {
	dir              string
	filenameTemplate string
	codec            Codec
	generateKey      KeyGenerator
}

// StoreOption configures a FilesystemStore.
type StoreOption func(*FilesystemStore)

// WithFilenameTemplate sets the backing file naming pattern. The template
// must contain exactly one %s verb for the session identifier.
func WithFilenameTemplate(template string) StoreOption {
	return func(s *FilesystemStore) {
		s.filenameTemplate = template
	}
}

// WithCodec sets the serialization codec for backing files.
func WithCodec(codec Codec) StoreOption {
	return func(s *FilesystemStore) {
		s.codec = codec
	}
}

// WithKeyGenerator sets the identifier generation strategy.
func WithKeyGenerator(generate KeyGenerator) StoreOption {
	return func(s *FilesystemStore) {
		s.generateKey = generate
	}
}

// NewFilesystemStore creates a store over dir, creating the directory if
// needed. An empty dir falls back to the OS temp directory. Defaults:
// DefaultFilenameTemplate, GobCodec, GenerateKey.
func NewFilesystemStore(dir string, opts ...StoreOption) (*FilesystemStore, error) {
	if dir == "" {
		dir = os.TempDir()
	}

	s := &FilesystemStore{
		dir:              dir,
		filenameTemplate: DefaultFilenameTemplate,
		codec:            GobCodec{},
		generateKey:      GenerateKey,
	}

	for _, opt := range opts {
		opt(s)
	}

	if strings.Count(s.filenameTemplate, "%") != 1 || !strings.Contains(s.filenameTemplate, "%s") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTemplate, s.filenameTemplate)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}

	return s, nil
}

// Filename returns the backing file path for a session identifier.
func (s *FilesystemStore) Filename(id string) string {
	return filepath.Join(s.dir, fmt.Sprintf(s.filenameTemplate, id))
}

// IsValidKey checks whether key has the 40-hex-character identifier format.
func (s *FilesystemStore) IsValidKey(key string) bool {
	return ValidKey(key)
}

// GenerateKey produces a fresh session identifier.
func (s *FilesystemStore) GenerateKey(salt string) (string, error) {
	return s.generateKey(salt)
}

// New returns a fresh empty session with a newly generated identifier.
func (s *FilesystemStore) New() (*Session, error) {
	id, err := s.generateKey("")
	if err != nil {
		return nil, err
	}
	return NewSession(nil, id, true), nil
}

// Save writes the session's values to its backing file, fully replacing any
// previous record. The encoded bytes land in a uniquely named temp file first
// and are renamed over the final path, so readers never observe a partial
// record.
func (s *FilesystemStore) Save(session *Session) error {
	if session == nil {
		return ErrNilSession
	}

	encoded, err := s.codec.Encode(session.Map())
	if err != nil {
		return errors.Join(ErrEncodeFailed, err)
	}

	// Temp file in the same directory so the rename never crosses filesystems
	tmp := filepath.Join(s.dir, "."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, encoded, 0o600); err != nil {
		return err
	}

	if err := os.Rename(tmp, s.Filename(session.ID)); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return nil
}

// SaveIfModified saves the session only when it reports ShouldSave.
func (s *FilesystemStore) SaveIfModified(session *Session) error {
	if session == nil {
		return ErrNilSession
	}
	if !session.ShouldSave() {
		return nil
	}
	return s.Save(session)
}

// Delete removes the session's backing file. A missing file is success; any
// other filesystem error propagates.
func (s *FilesystemStore) Delete(session *Session) error {
	if session == nil {
		return ErrNilSession
	}
	if err := os.Remove(s.Filename(session.ID)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Get loads the session stored under id. An id that fails validation or has
// no backing file yields a fresh session with a different identifier, without
// touching the file. A file that exists but cannot be read or decoded is data
// corruption, not absence, and the failure propagates.
func (s *FilesystemStore) Get(id string) (*Session, error) {
	if !s.IsValidKey(id) {
		return s.New()
	}

	raw, err := os.ReadFile(s.Filename(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s.New()
		}
		return nil, err
	}

	values, err := s.codec.Decode(raw)
	if err != nil {
		return nil, errors.Join(ErrDecodeFailed, err)
	}

	return NewSession(values, id, false), nil
}
