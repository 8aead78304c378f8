package main

import (
	"errors"
	"testing"

	"github.com/tailored-agentic-units/vehiclenet/alloc"
	"github.com/tailored-agentic-units/vehiclenet/fixture"
	"github.com/tailored-agentic-units/vehiclenet/holder"
	"github.com/tailored-agentic-units/vehiclenet/observability"
	"github.com/tailored-agentic-units/vehiclenet/vnet"
)

func TestRun_NoLeaks(t *testing.T) {
	doc, err := fixture.Load("../../fixture/testdata/cabin.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	rec := observability.NewRecorder()
	cfg := vnet.DefaultConfig()
	rt, err := vnet.New(&cfg, vnet.WithObserver(rec))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := run(rt, doc, 3); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if rt.Stats().Leaked() {
		t.Errorf("Stats() = %+v, want nothing live", rt.Stats())
	}
	// Two loaded lists plus a view and a batch per round.
	if got := rec.Count(holder.EventDestroy); got != 8 {
		t.Errorf("destroy events = %d, want 8", got)
	}
}

func TestRelease_JoinsErrors(t *testing.T) {
	a := alloc.NewTracker(&alloc.Config{})
	l := holder.NewValueList(a, holder.Borrowing)
	l.Release()

	first := errors.New("first")
	err := first
	release(&err, l)

	if !errors.Is(err, holder.ErrReleased) || !errors.Is(err, first) {
		t.Errorf("release() error = %v, want joined ErrReleased", err)
	}
}
