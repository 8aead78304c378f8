// Package value defines PropertyValue, the tagged record carrying one vehicle
// property reading, and its deep copy and release contract.
//
// A buffer payload (TypeString, TypeBytes) is owned by exactly one
// PropertyValue. Plain assignment copies the record shallowly and makes two
// values share one buffer; use Copy, CopyInto or AllocCopy instead.
// Zero-length buffers are always represented as nil.
package value

import (
	"errors"
	"fmt"

	"github.com/tailored-agentic-units/vehiclenet/alloc"
)

// Payload is the variant storage of a PropertyValue. The scalar slots are
// read according to the owning value's ValueType; the buffer is only ever set
// for buffer kinds.
type Payload struct {
	Int32s  [4]int32
	Int64   int64
	Floats  [4]float32
	Boolean bool

	buf []byte
}

// PropertyValue is one value of a vehicle property.
type PropertyValue struct {
	Prop      int32
	ValueType ValueType
	Timestamp int64 // Nanoseconds, source defined.
	Zone      int32
	Payload   Payload
}

// Bytes returns the owned buffer. The slice is only valid until the value is
// released; callers that keep it longer must copy it.
func (v *PropertyValue) Bytes() []byte {
	return v.Payload.buf
}

// Text returns the buffer as a string. The result is a copy.
func (v *PropertyValue) Text() string {
	return string(v.Payload.buf)
}

// Len returns the buffer length; 0 for scalar kinds.
func (v *PropertyValue) Len() int {
	return len(v.Payload.buf)
}

// SetBytes replaces the buffer with an owned copy of b. On failure v is left
// unchanged.
func (v *PropertyValue) SetBytes(a alloc.Allocator, b []byte) error {
	if !v.ValueType.IsBuffer() {
		return fmt.Errorf("%w: %s", ErrNotBuffer, v.ValueType)
	}

	buf, err := ownCopy(a, b)
	if err != nil {
		return err
	}
	if err := ReleaseBuffer(a, v); err != nil {
		return errors.Join(err, a.FreeBytes(buf))
	}
	v.Payload.buf = buf
	return nil
}

// SetString replaces the buffer with an owned copy of s.
func (v *PropertyValue) SetString(a alloc.Allocator, s string) error {
	return v.SetBytes(a, []byte(s))
}

// ReleaseBuffer frees the buffer owned by v and clears it, so releasing twice
// is a no-op. Scalar values and nil are ignored.
func ReleaseBuffer(a alloc.Allocator, v *PropertyValue) error {
	if v == nil || v.Payload.buf == nil {
		return nil
	}
	buf := v.Payload.buf
	v.Payload.buf = nil
	return a.FreeBytes(buf)
}

func ownCopy(a alloc.Allocator, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}
	buf, err := a.Bytes(len(src))
	if err != nil {
		return nil, err
	}
	copy(buf, src)
	return buf, nil
}
