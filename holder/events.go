package holder

import "github.com/tailored-agentic-units/vehiclenet/observability"

// Holder event types.
const (
	EventAcquire observability.EventType = "holder.acquire"
	EventRelease observability.EventType = "holder.release"
	EventDestroy observability.EventType = "holder.destroy"
)
