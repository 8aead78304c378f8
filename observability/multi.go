package observability

import "context"

// MultiObserver fans out events to multiple observers in order.
type MultiObserver struct {
	observers []Observer
}

// NewMultiObserver creates a MultiObserver over the non-nil observers.
// Nested MultiObservers are flattened and NoOpObservers dropped, so stacking
// fan-outs costs one call per real observer.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	m := &MultiObserver{observers: make([]Observer, 0, len(observers))}
	for _, obs := range observers {
		switch o := obs.(type) {
		case nil, NoOpObserver:
		case *MultiObserver:
			m.observers = append(m.observers, o.observers...)
		default:
			m.observers = append(m.observers, o)
		}
	}
	return m
}

// Len returns the number of observers events are delivered to.
func (m *MultiObserver) Len() int {
	return len(m.observers)
}

func (m *MultiObserver) OnEvent(ctx context.Context, event Event) {
	for _, obs := range m.observers {
		obs.OnEvent(ctx, event)
	}
}
