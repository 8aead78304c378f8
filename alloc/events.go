package alloc

import "github.com/tailored-agentic-units/vehiclenet/observability"

// Allocator event types.
const (
	EventNoMemory    observability.EventType = "alloc.no_memory"
	EventInvalidFree observability.EventType = "alloc.invalid_free"
)
