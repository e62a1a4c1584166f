package docstore

import "errors"

var (
	// ErrNotFound indicates the requested document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidStoreType indicates an unsupported driver name.
	ErrInvalidStoreType = errors.New("invalid store type")

	// ErrInvalidConfig indicates missing driver configuration.
	ErrInvalidConfig = errors.New("invalid store config")
)
