package checkpoint

import "github.com/pkg/errors"

var (
	// ErrInvalidMagic indicates the file does not start with the .ember
	// magic bytes.
	ErrInvalidMagic = errors.New("checkpoint: invalid magic bytes")

	// ErrUnsupportedVersion indicates a format version this build cannot
	// read.
	ErrUnsupportedVersion = errors.New("checkpoint: unsupported format version")

	// ErrChecksumMismatch indicates the data section does not match the
	// checksum recorded in the header.
	ErrChecksumMismatch = errors.New("checkpoint: checksum mismatch")
)
