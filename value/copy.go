package value

import (
	"errors"
	"fmt"

	"github.com/tailored-agentic-units/vehiclenet/alloc"
)

// Copy returns a deep copy of src. Buffer kinds get a fresh buffer of
// src.Len() bytes; an empty buffer copies to nil.
func Copy(a alloc.Allocator, src *PropertyValue) (PropertyValue, error) {
	out := *src
	out.Payload.buf = nil

	if src.ValueType.IsBuffer() {
		buf, err := ownCopy(a, src.Payload.buf)
		if err != nil {
			return PropertyValue{}, fmt.Errorf("copy property 0x%x: %w", src.Prop, err)
		}
		out.Payload.buf = buf
	}
	return out, nil
}

// CopyInto deep-copies src into dest. When releaseExisting is set, the buffer
// dest held before the call is freed once the copy has succeeded; otherwise
// the caller must already own that buffer through another value. On failure
// dest is not modified and nothing is left allocated.
func CopyInto(a alloc.Allocator, dest, src *PropertyValue, releaseExisting bool) error {
	c, err := Copy(a, src)
	if err != nil {
		return err
	}
	if releaseExisting {
		if err := ReleaseBuffer(a, dest); err != nil {
			return errors.Join(err, ReleaseBuffer(a, &c))
		}
	}
	*dest = c
	return nil
}

// AllocCopy allocates a new record holding a deep copy of src. The result
// must be freed with Delete. On failure every partial allocation has already
// been returned.
func AllocCopy(a alloc.Allocator, src *PropertyValue) (*PropertyValue, error) {
	v := new(PropertyValue)
	if err := a.Record(v); err != nil {
		return nil, fmt.Errorf("alloc property 0x%x: %w", src.Prop, err)
	}

	c, err := Copy(a, src)
	if err != nil {
		return nil, errors.Join(err, a.FreeRecord(v))
	}
	*v = c
	return v, nil
}

// Delete releases the buffer of a record obtained from AllocCopy, then the
// record itself. Deleting the same record twice returns alloc.ErrNotOwned.
func Delete(a alloc.Allocator, v *PropertyValue) error {
	if v == nil {
		return nil
	}
	return errors.Join(ReleaseBuffer(a, v), a.FreeRecord(v))
}
