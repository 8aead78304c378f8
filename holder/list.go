package holder

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/tailored-agentic-units/vehiclenet/alloc"
	"github.com/tailored-agentic-units/vehiclenet/observability"
)

// Option configures a list at construction.
type Option func(*options)

type options struct {
	observer observability.Observer
}

// WithObserver routes holder events to o. The default is NoOpObserver.
func WithObserver(o observability.Observer) Option {
	return func(opts *options) { opts.observer = o }
}

func buildOptions(opts []Option) options {
	o := options{observer: observability.NoOpObserver{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// list is the shared shape of ValueList and ConfigList.
type list[T any] struct {
	id       string
	kind     string
	alloc    alloc.Allocator
	own      Ownership
	items    []T
	free     func(alloc.Allocator, T) error
	observer observability.Observer
	refs     atomic.Int32
}

// setup prepares a list held once.
func (l *list[T]) setup(kind string, a alloc.Allocator, own Ownership, items []T, free func(alloc.Allocator, T) error, opts []Option) {
	o := buildOptions(opts)
	l.id = uuid.Must(uuid.NewV7()).String()
	l.kind = kind
	l.alloc = a
	l.own = own
	l.items = items
	l.free = free
	l.observer = o.observer
	l.refs.Store(1)
}

// ID returns the unique list identifier.
func (l *list[T]) ID() string {
	return l.id
}

// Ownership returns the ownership fixed at construction.
func (l *list[T]) Ownership() Ownership {
	return l.own
}

// Refs returns the current number of holders.
func (l *list[T]) Refs() int {
	return int(l.refs.Load())
}

// Live reports whether the list has not been destroyed.
func (l *list[T]) Live() bool {
	return l.refs.Load() > 0
}

// Len returns the number of elements.
func (l *list[T]) Len() int {
	return len(l.items)
}

// Append adds an element at the end. An owning list takes ownership of item.
func (l *list[T]) Append(item T) error {
	if !l.Live() {
		return fmt.Errorf("%w: %s", ErrReleased, l.id)
	}
	l.items = append(l.items, item)
	return nil
}

// All yields the elements in insertion order. The sequence may be ranged
// over any number of times; a destroyed list yields nothing.
func (l *list[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range l.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Release drops one holder. The call that drops the last holder destroys the
// list and returns any error met while freeing elements.
func (l *list[T]) Release() error {
	for {
		n := l.refs.Load()
		if n <= 0 {
			return fmt.Errorf("%w: %s", ErrReleased, l.id)
		}
		if l.refs.CompareAndSwap(n, n-1) {
			l.emit(EventRelease, map[string]any{"refs": n - 1})
			if n == 1 {
				return l.destroy()
			}
			return nil
		}
	}
}

func (l *list[T]) acquire() error {
	for {
		n := l.refs.Load()
		if n <= 0 {
			return fmt.Errorf("%w: %s", ErrReleased, l.id)
		}
		if l.refs.CompareAndSwap(n, n+1) {
			l.emit(EventAcquire, map[string]any{"refs": n + 1})
			return nil
		}
	}
}

func (l *list[T]) destroy() error {
	var errs []error
	if l.own == Owning {
		for _, item := range l.items {
			if err := l.free(l.alloc, item); err != nil {
				errs = append(errs, err)
			}
		}
	}
	elements := len(l.items)
	l.items = nil

	l.emit(EventDestroy, map[string]any{
		"ownership": l.own.String(),
		"elements":  elements,
		"errors":    len(errs),
	})

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("destroy %s %s: %w", l.kind, l.id, err)
	}
	return nil
}

func (l *list[T]) emit(typ observability.EventType, data map[string]any) {
	data["id"] = l.id
	l.observer.OnEvent(context.Background(), observability.Event{
		Type:      typ,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    "holder." + l.kind,
		Data:      data,
	})
}
