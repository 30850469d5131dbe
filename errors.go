// File: hconf/errors.go
package hconf

import "errors"

// Sentinel errors returned by this package. All errors are wrapped with
// fmt.Errorf("%w: ...") so callers can match them with errors.Is.
var (
	// ErrInvalidKey indicates a key that cannot be stored in a configuration
	// (e.g., an empty string).
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidPath indicates a malformed hierarchical address
	// (empty path, or a path with empty segments).
	ErrInvalidPath = errors.New("invalid path")

	// ErrKeyNotFound indicates a read or delete of an absent key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrNotHierarchical indicates an attempt to descend through a leaf value.
	ErrNotHierarchical = errors.New("not a sub-configuration")

	// ErrOverwrite indicates a protected mutation of an existing key on a
	// Careful configuration. Use Overwrite or OverwriteAll instead.
	ErrOverwrite = errors.New("key already defined")

	// ErrImmutable indicates any mutation attempt on a Frozen configuration.
	ErrImmutable = errors.New("configuration is frozen")

	// ErrCollision indicates that Unflatten encountered a flat key that is
	// simultaneously a leaf and an ancestor of another leaf.
	ErrCollision = errors.New("flat key collision")

	// ErrNotHashable indicates a Hash call on a non-Frozen configuration.
	ErrNotHashable = errors.New("configuration is not hashable")

	// ErrConfigNotFound indicates that a configuration file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrUnknownFormat indicates that the file format could not be determined.
	ErrUnknownFormat = errors.New("unknown config format")
)
