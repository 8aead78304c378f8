package holder

import "errors"

// Sentinel errors for list operations.
var (
	ErrReleased  = errors.New("list already released")
	ErrNotOwning = errors.New("list does not own its elements")
)
