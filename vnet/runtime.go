// Package vnet wires the allocator, observability and the shared holders
// together from configuration.
//
//	rt, err := vnet.New(&cfg)
//	values := rt.NewValueList(holder.Owning)
//	defer values.Release()
//	err = values.AppendCopy(&v)
package vnet

import (
	"fmt"
	"log/slog"

	"github.com/tailored-agentic-units/vehiclenet/alloc"
	"github.com/tailored-agentic-units/vehiclenet/fixture"
	"github.com/tailored-agentic-units/vehiclenet/holder"
	"github.com/tailored-agentic-units/vehiclenet/observability"
	"github.com/tailored-agentic-units/vehiclenet/value"
)

// Option configures a Runtime after config-driven initialization.
type Option func(*Runtime)

// WithLogger replaces the configured observer with a SlogObserver on logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) { r.observer = observability.NewSlogObserver(logger) }
}

// WithObserver overrides the configured observer.
func WithObserver(o observability.Observer) Option {
	return func(r *Runtime) { r.observer = o }
}

// WithAllocator overrides the config-created Tracker.
func WithAllocator(a alloc.Allocator) Option {
	return func(r *Runtime) { r.alloc = a }
}

// Runtime hands out values and lists that share one allocator and observer.
type Runtime struct {
	alloc    alloc.Allocator
	observer observability.Observer
}

// New creates a Runtime from configuration.
func New(cfg *Config, opts ...Option) (*Runtime, error) {
	name := cfg.Observer
	if name == "" {
		name = defaultObserver
	}
	obs, err := observability.GetObserver(name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}
	if cfg.MinLevel != "" {
		level, err := observability.ParseLevel(cfg.MinLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve min level: %w", err)
		}
		obs = observability.NewFilter(level, obs)
	}

	r := &Runtime{observer: obs}
	for _, opt := range opts {
		opt(r)
	}
	if r.alloc == nil {
		r.alloc = alloc.NewTracker(&cfg.Alloc, alloc.WithObserver(r.observer))
	}
	return r, nil
}

// Allocator returns the shared allocator.
func (r *Runtime) Allocator() alloc.Allocator {
	return r.alloc
}

// Stats returns the shared allocator's counters.
func (r *Runtime) Stats() alloc.Stats {
	return r.alloc.Stats()
}

// Scoped returns a ScopedValue on the shared allocator.
func (r *Runtime) Scoped() *value.ScopedValue {
	return value.NewScoped(r.alloc)
}

// AllocCopy returns an accounted deep copy of src; free it with Delete.
func (r *Runtime) AllocCopy(src *value.PropertyValue) (*value.PropertyValue, error) {
	return value.AllocCopy(r.alloc, src)
}

// Delete frees a value obtained from AllocCopy.
func (r *Runtime) Delete(v *value.PropertyValue) error {
	return value.Delete(r.alloc, v)
}

// NewValueList creates a value list reporting to the runtime observer.
func (r *Runtime) NewValueList(own holder.Ownership) *holder.ValueList {
	return holder.NewValueList(r.alloc, own, holder.WithObserver(r.observer))
}

// NewConfigList creates a config list reporting to the runtime observer.
func (r *Runtime) NewConfigList(own holder.Ownership) *holder.ConfigList {
	return holder.NewConfigList(r.alloc, own, holder.WithObserver(r.observer))
}

// LoadValues materialises the document's values into a new owning list.
func (r *Runtime) LoadValues(doc *fixture.Document) (*holder.ValueList, error) {
	values, err := doc.AllocValues(r.alloc)
	if err != nil {
		return nil, fmt.Errorf("failed to load values: %w", err)
	}
	return holder.WrapValueList(r.alloc, holder.Owning, values, holder.WithObserver(r.observer)), nil
}

// LoadConfigs materialises the document's configs into a new owning list.
func (r *Runtime) LoadConfigs(doc *fixture.Document) (*holder.ConfigList, error) {
	configs, err := doc.AllocConfigs(r.alloc)
	if err != nil {
		return nil, fmt.Errorf("failed to load configs: %w", err)
	}
	return holder.WrapConfigList(r.alloc, holder.Owning, configs, holder.WithObserver(r.observer)), nil
}
