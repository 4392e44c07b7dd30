package session

import "errors"

var (
	// ErrKeyGeneration indicates the OS entropy source failed
	ErrKeyGeneration = errors.New("session.key_generation_failed")

	// ErrEncodeFailed indicates the codec could not serialize session values
	ErrEncodeFailed = errors.New("session.encode_failed")

	// ErrDecodeFailed indicates a backing record exists but could not be
	// deserialized (corrupt file or codec mismatch)
	ErrDecodeFailed = errors.New("session.decode_failed")

	// ErrInvalidTemplate indicates a filename template without exactly one %s verb
	ErrInvalidTemplate = errors.New("session.invalid_filename_template")

	// ErrNilSession indicates a nil session was passed to a store operation
	ErrNilSession = errors.New("session.nil_session")
)
