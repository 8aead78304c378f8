package value

import "errors"

// Sentinel errors for property values.
var (
	ErrUnknownType = errors.New("unknown value type")
	ErrNotBuffer   = errors.New("value type has no buffer payload")
)
