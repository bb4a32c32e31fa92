package store

import "errors"

// Sentinel errors returned by store operations. Callers distinguish expected
// conditions with errors.Is; none of these are ever fatal to the process.
var (
	// ErrNotFound reports a missing key or annotation in the targeted container.
	ErrNotFound = errors.New("not found")

	// ErrExists reports a duplicate add into a staging container or
	// pending-removal set.
	ErrExists = errors.New("already exists")

	// ErrFileNotFound reports a missing file or containing directory on Open.
	ErrFileNotFound = errors.New("file not found")

	// ErrFileExists reports a refused overwrite on Save.
	ErrFileExists = errors.New("file already exists")

	// ErrNoPermission reports insufficient permission on Save.
	ErrNoPermission = errors.New("permission denied")

	// ErrNotLoaded reports an operation that requires loaded state.
	ErrNotLoaded = errors.New("no configuration loaded")
)
