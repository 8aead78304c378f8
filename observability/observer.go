// Package observability carries allocator and holder events to logs. An
// Event names what happened; an Observer decides where it goes. Level values
// follow the OpenTelemetry SeverityNumber ranges.
package observability

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Level is the severity of an event.
type Level int

const (
	LevelVerbose Level = 5 // holder acquire/release/destroy
	LevelInfo    Level = 9
	LevelWarning Level = 13 // rejected frees
	LevelError   Level = 17 // refused allocations
)

// String returns the OTel severity text for the level.
func (l Level) String() string {
	switch {
	case l <= 4:
		return "TRACE"
	case l <= 8:
		return "DEBUG"
	case l <= 12:
		return "INFO"
	case l <= 16:
		return "WARN"
	case l <= 20:
		return "ERROR"
	default:
		return "FATAL"
	}
}

// SlogLevel maps l onto the slog level used when the event is logged.
func (l Level) SlogLevel() slog.Level {
	switch {
	case l <= 8:
		return slog.LevelDebug
	case l <= 12:
		return slog.LevelInfo
	case l <= 16:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// ParseLevel resolves a level name from configuration: "verbose" or
// "debug", "info", "warn" or "warning", "error". Case is ignored.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose", "debug":
		return LevelVerbose, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	}
	return 0, fmt.Errorf("unknown level: %q", s)
}

// EventType identifies the kind of event, for example "alloc.no_memory" or
// "holder.destroy". alloc and holder declare their own constants.
type EventType string

// Event is one occurrence reported by the allocator or a holder. Source is
// the emitting type ("alloc.Tracker", "holder.ValueList"); Data carries
// event-specific attributes such as sizes, list IDs and element counts.
type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// Observer receives events from subsystems. Implementations must be safe for
// concurrent use; holders may be released from any goroutine.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}

// NoOpObserver discards all events.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(ctx context.Context, event Event) {}

// Filter forwards events at or above a minimum level.
type Filter struct {
	level Level
	next  Observer
}

// NewFilter creates a Filter that passes events of at least level to next.
func NewFilter(level Level, next Observer) *Filter {
	return &Filter{level: level, next: next}
}

func (f *Filter) OnEvent(ctx context.Context, event Event) {
	if event.Level >= f.level {
		f.next.OnEvent(ctx, event)
	}
}
