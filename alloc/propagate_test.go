//go:build !vhal_abort_on_nomem

package alloc_test

import (
	"errors"
	"testing"

	"github.com/tailored-agentic-units/vehiclenet/alloc"
	"github.com/tailored-agentic-units/vehiclenet/observability"
)

func TestBuildPolicy_Propagate(t *testing.T) {
	if alloc.BuildPolicy != alloc.PolicyPropagate {
		t.Errorf("BuildPolicy = %v, want propagate", alloc.BuildPolicy)
	}
}

func TestTracker_Limits(t *testing.T) {
	tests := []struct {
		name   string
		cfg    alloc.Config
		allocs func(a *alloc.Tracker) error
	}{
		{
			name: "max bytes",
			cfg:  alloc.Config{MaxBytes: 10},
			allocs: func(a *alloc.Tracker) error {
				if _, err := a.Bytes(8); err != nil {
					return err
				}
				_, err := a.Bytes(4)
				return err
			},
		},
		{
			name: "max records",
			cfg:  alloc.Config{MaxRecords: 1},
			allocs: func(a *alloc.Tracker) error {
				if err := a.Record(new(int)); err != nil {
					return err
				}
				return a.Record(new(int))
			},
		},
		{
			name: "fail after",
			cfg:  alloc.Config{FailAfter: 2},
			allocs: func(a *alloc.Tracker) error {
				if err := a.Record(new(int)); err != nil {
					return err
				}
				if _, err := a.Bytes(1); err != nil {
					return err
				}
				_, err := a.Bytes(1)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := observability.NewRecorder()
			a := alloc.NewTracker(&tt.cfg, alloc.WithObserver(rec))

			err := tt.allocs(a)
			if !errors.Is(err, alloc.ErrNoMemory) {
				t.Fatalf("error = %v, want ErrNoMemory", err)
			}
			if got := a.Stats().Failures; got != 1 {
				t.Errorf("Failures = %d, want 1", got)
			}
			if got := rec.Count(alloc.EventNoMemory); got != 1 {
				t.Errorf("Count(%s) = %d, want 1", alloc.EventNoMemory, got)
			}
		})
	}
}

func TestTracker_FreeRestoresHeadroom(t *testing.T) {
	a := alloc.NewTracker(&alloc.Config{MaxBytes: 4})

	b, err := a.Bytes(4)
	if err != nil {
		t.Fatalf("Bytes(4) error = %v", err)
	}
	if _, err := a.Bytes(1); !errors.Is(err, alloc.ErrNoMemory) {
		t.Fatalf("Bytes(1) error = %v, want ErrNoMemory", err)
	}
	if err := a.FreeBytes(b); err != nil {
		t.Fatalf("FreeBytes() error = %v", err)
	}
	if _, err := a.Bytes(4); err != nil {
		t.Errorf("Bytes(4) after free error = %v", err)
	}
}
