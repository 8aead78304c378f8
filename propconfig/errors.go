package propconfig

import "errors"

// ErrUnknownEnum is returned when an enum name cannot be resolved.
var ErrUnknownEnum = errors.New("unknown enum name")
