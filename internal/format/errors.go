package format

import "errors"

var (
	// ErrMalformed covers bad magic, unsupported version, bad enum
	// values, and other structural violations of the fixed layout.
	ErrMalformed = errors.New("malformed archive structure")
	// ErrResourceLimit covers any fixed size or count bound exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")
	// ErrPathTraversal is returned when a filename or stored output
	// directory fails the traversal predicate.
	ErrPathTraversal = errors.New("path traversal rejected")
	// ErrInvalidMetadata covers decrypted FileEntryPlain records that
	// violate an invariant (size mismatch, missing NUL terminator, etc).
	ErrInvalidMetadata = errors.New("invalid entry metadata")
)
