package holder

import (
	"fmt"

	"github.com/tailored-agentic-units/vehiclenet/alloc"
	"github.com/tailored-agentic-units/vehiclenet/value"
)

// ValueList is a reference-counted list of property values.
type ValueList struct {
	list[*value.PropertyValue]
}

// NewValueList creates an empty list held once. Elements of an owning list
// must come from value.AllocCopy (or AppendCopy) on the same allocator.
func NewValueList(a alloc.Allocator, own Ownership, opts ...Option) *ValueList {
	return WrapValueList(a, own, nil, opts...)
}

// WrapValueList creates a list held once over an existing slice, which the
// list takes over.
func WrapValueList(a alloc.Allocator, own Ownership, items []*value.PropertyValue, opts ...Option) *ValueList {
	l := &ValueList{}
	l.setup("ValueList", a, own, items, value.Delete, opts)
	return l
}

// Acquire adds a holder and returns the same list for the new holder.
func (l *ValueList) Acquire() (*ValueList, error) {
	if err := l.acquire(); err != nil {
		return nil, err
	}
	return l, nil
}

// AppendCopy appends a deep copy of src manufactured by the list. Only
// owning lists accept copies, since a borrowing list would never free them.
func (l *ValueList) AppendCopy(src *value.PropertyValue) error {
	if l.own != Owning {
		return fmt.Errorf("%w: %s", ErrNotOwning, l.id)
	}
	if !l.Live() {
		return fmt.Errorf("%w: %s", ErrReleased, l.id)
	}

	v, err := value.AllocCopy(l.alloc, src)
	if err != nil {
		return err
	}
	l.items = append(l.items, v)
	return nil
}
