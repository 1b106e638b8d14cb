package reconcile

import "errors"

var (
	// ErrLocalFileMissing fails a targeted sync of a name with no local file.
	ErrLocalFileMissing = errors.New("file not found locally")

	// ErrStoreUnreachable is returned with the partial result when every upload attempted
	// by a batch failed because the object store could not be reached.
	ErrStoreUnreachable = errors.New("object store unreachable")

	// ErrNoFiles rejects a targeted sync without any names.
	ErrNoFiles = errors.New("no files specified")
)
