package alloc

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/tailored-agentic-units/vehiclenet/observability"
)

// Option configures a Tracker.
type Option func(*Tracker)

// WithObserver routes allocator events to o. The default is NoOpObserver.
func WithObserver(o observability.Observer) Option {
	return func(t *Tracker) { t.observer = o }
}

// Tracker is the accounting Allocator. Buffers are identified by their first
// byte and records by their pointer, so anything freed twice, or a slice that
// merely aliases a live buffer, is rejected with ErrNotOwned. All methods are
// safe for concurrent use.
type Tracker struct {
	cfg      Config
	observer observability.Observer
	live     map[*byte]int
	records  map[any]struct{}
	stats    Stats
	mu       sync.Mutex
}

var _ Allocator = (*Tracker)(nil)

// NewTracker creates a Tracker with the given limits.
func NewTracker(cfg *Config, opts ...Option) *Tracker {
	t := &Tracker{
		cfg:      *cfg,
		observer: observability.NoOpObserver{},
		live:     make(map[*byte]int),
		records:  make(map[any]struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Bytes returns a new zeroed buffer of n bytes. Bytes(0) returns nil without
// allocating.
func (t *Tracker) Bytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}

	t.mu.Lock()
	if t.exhausted() || (t.cfg.MaxBytes > 0 && t.stats.LiveBytes+int64(n) > t.cfg.MaxBytes) {
		t.stats.Failures++
		t.mu.Unlock()
		return nil, t.fail(fmt.Sprintf("buffer of %d bytes", n), n)
	}
	b := make([]byte, n)
	t.live[&b[0]] = n
	t.stats.LiveBytes += int64(n)
	t.stats.LiveBuffers++
	t.stats.Allocs++
	t.mu.Unlock()

	return b, nil
}

// FreeBytes releases a buffer obtained from Bytes.
func (t *Tracker) FreeBytes(b []byte) error {
	if len(b) == 0 {
		return nil
	}

	t.mu.Lock()
	key := &b[0]
	n, ok := t.live[key]
	if !ok || n != len(b) {
		t.mu.Unlock()
		t.emit(EventInvalidFree, observability.LevelWarning, map[string]any{"size": len(b)})
		return fmt.Errorf("%w: %d bytes", ErrNotOwned, len(b))
	}
	delete(t.live, key)
	t.stats.LiveBytes -= int64(n)
	t.stats.LiveBuffers--
	t.stats.Frees++
	t.mu.Unlock()

	return nil
}

// Record accounts for the heap record p. Recording a record that is already
// live is an ownership error, not an allocation.
func (t *Tracker) Record(p any) error {
	if !isPointer(p) {
		return fmt.Errorf("%w: record %T is not a pointer", ErrNotOwned, p)
	}

	t.mu.Lock()
	if _, ok := t.records[p]; ok {
		t.mu.Unlock()
		t.emit(EventInvalidFree, observability.LevelWarning, map[string]any{"record": fmt.Sprintf("%T", p)})
		return fmt.Errorf("%w: record %p already live", ErrNotOwned, p)
	}
	if t.exhausted() || (t.cfg.MaxRecords > 0 && t.stats.LiveRecords >= t.cfg.MaxRecords) {
		t.stats.Failures++
		t.mu.Unlock()
		return t.fail("record", 0)
	}
	t.records[p] = struct{}{}
	t.stats.LiveRecords++
	t.stats.Allocs++
	t.mu.Unlock()

	return nil
}

// FreeRecord releases a record accounted by Record. Freeing it twice, or
// freeing a pointer that was never recorded, returns ErrNotOwned.
func (t *Tracker) FreeRecord(p any) error {
	if !isPointer(p) {
		return fmt.Errorf("%w: record %T is not a pointer", ErrNotOwned, p)
	}

	t.mu.Lock()
	if _, ok := t.records[p]; !ok {
		t.mu.Unlock()
		t.emit(EventInvalidFree, observability.LevelWarning, map[string]any{"record": fmt.Sprintf("%T", p)})
		return fmt.Errorf("%w: record %p", ErrNotOwned, p)
	}
	delete(t.records, p)
	t.stats.LiveRecords--
	t.stats.Frees++
	t.mu.Unlock()

	return nil
}

func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

func isPointer(p any) bool {
	v := reflect.ValueOf(p)
	return v.Kind() == reflect.Pointer && !v.IsNil()
}

// exhausted must be called with mu held.
func (t *Tracker) exhausted() bool {
	return t.cfg.FailAfter > 0 && t.stats.Allocs >= uint64(t.cfg.FailAfter)
}

// fail applies BuildPolicy to a refused request. Every allocation site goes
// through here.
func (t *Tracker) fail(what string, n int) error {
	err := fmt.Errorf("%w: %s", ErrNoMemory, what)
	t.emit(EventNoMemory, observability.LevelError, map[string]any{
		"request": what,
		"size":    n,
		"policy":  BuildPolicy.String(),
	})
	if BuildPolicy == PolicyAbort {
		panic(err)
	}
	return err
}

func (t *Tracker) emit(typ observability.EventType, level observability.Level, data map[string]any) {
	t.observer.OnEvent(context.Background(), observability.Event{
		Type:      typ,
		Level:     level,
		Timestamp: time.Now(),
		Source:    "alloc.Tracker",
		Data:      data,
	})
}
