package value

import "github.com/tailored-agentic-units/vehiclenet/alloc"

// noCopy lets go vet's copylocks check flag copies of ScopedValue.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// ScopedValue holds a PropertyValue for the duration of a scope and releases
// its buffer on Close. It must not be copied; use Copy to take the value out.
//
//	s := value.NewScoped(a)
//	defer s.Close()
//	v := s.Value()
type ScopedValue struct {
	_     noCopy
	alloc alloc.Allocator
	value PropertyValue
}

// NewScoped creates a ScopedValue holding a zero PropertyValue.
func NewScoped(a alloc.Allocator) *ScopedValue {
	return &ScopedValue{alloc: a}
}

// Value returns the held value. The pointer and any buffer reached through it
// are invalid after Close.
func (s *ScopedValue) Value() *PropertyValue {
	return &s.value
}

// Copy returns a deep copy of the held value that outlives the scope.
func (s *ScopedValue) Copy() (PropertyValue, error) {
	return Copy(s.alloc, &s.value)
}

// Close releases the held buffer. Further calls are no-ops.
func (s *ScopedValue) Close() error {
	return ReleaseBuffer(s.alloc, &s.value)
}

// WithScoped runs fn with a scoped value and releases it on every exit path,
// including a panic in fn.
func WithScoped(a alloc.Allocator, fn func(v *PropertyValue) error) (err error) {
	s := NewScoped(a)
	defer func() {
		if cerr := s.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(s.Value())
}
