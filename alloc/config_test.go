package alloc_test

import (
	"testing"

	"github.com/tailored-agentic-units/vehiclenet/alloc"
)

func TestDefaultConfig(t *testing.T) {
	cfg := alloc.DefaultConfig()

	if cfg != (alloc.Config{}) {
		t.Errorf("got %+v, want unlimited zero config", cfg)
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := alloc.Config{MaxBytes: 64, MaxRecords: 2}

	cfg.Merge(&alloc.Config{MaxRecords: 8, FailAfter: 3})

	if cfg.MaxBytes != 64 {
		t.Errorf("got MaxBytes %d, want 64 (preserved)", cfg.MaxBytes)
	}
	if cfg.MaxRecords != 8 {
		t.Errorf("got MaxRecords %d, want 8", cfg.MaxRecords)
	}
	if cfg.FailAfter != 3 {
		t.Errorf("got FailAfter %d, want 3", cfg.FailAfter)
	}
}
