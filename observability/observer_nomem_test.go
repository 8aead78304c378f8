//go:build !vhal_abort_on_nomem

package observability_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/tailored-agentic-units/vehiclenet/alloc"
	"github.com/tailored-agentic-units/vehiclenet/observability"
)

func TestSlogObserver_NoMemoryLine(t *testing.T) {
	var buf bytes.Buffer
	rec := observability.NewRecorder()
	obs := observability.NewMultiObserver(
		rec,
		observability.NewFilter(observability.LevelError, observability.NewSlogObserver(newTextLogger(&buf, slog.LevelDebug))),
	)

	a := alloc.NewTracker(&alloc.Config{MaxBytes: 2}, alloc.WithObserver(obs))
	if _, err := a.Bytes(3); err == nil {
		t.Fatal("Bytes(3) error = nil, want ErrNoMemory")
	}
	a.FreeBytes([]byte("stray"))

	if got := rec.Count(alloc.EventNoMemory); got != 1 {
		t.Errorf("Count(%s) = %d, want 1", alloc.EventNoMemory, got)
	}
	if got := rec.Count(alloc.EventInvalidFree); got != 1 {
		t.Errorf("Count(%s) = %d, want 1", alloc.EventInvalidFree, got)
	}

	out := buf.String()
	want := `level=ERROR msg=alloc.no_memory source=alloc.Tracker policy=propagate request="buffer of 3 bytes" size=3`
	if !strings.Contains(out, want) {
		t.Errorf("output = %q, want %q", out, want)
	}
	if strings.Contains(out, "alloc.invalid_free") {
		t.Errorf("filtered warning reached the log: %q", out)
	}
}
