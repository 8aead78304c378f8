package alloc

import "errors"

// Sentinel errors for allocator operations.
var (
	ErrNoMemory = errors.New("no memory")
	ErrNotOwned = errors.New("buffer not owned by allocator")
)
