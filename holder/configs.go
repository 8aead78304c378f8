package holder

import (
	"fmt"

	"github.com/tailored-agentic-units/vehiclenet/alloc"
	"github.com/tailored-agentic-units/vehiclenet/propconfig"
)

// ConfigList is a reference-counted list of property descriptors.
type ConfigList struct {
	list[*propconfig.PropertyConfig]
}

// NewConfigList creates an empty list held once. Elements of an owning list
// must come from propconfig.Clone (or AppendClone) on the same allocator.
func NewConfigList(a alloc.Allocator, own Ownership, opts ...Option) *ConfigList {
	return WrapConfigList(a, own, nil, opts...)
}

// WrapConfigList creates a list held once over an existing slice, which the
// list takes over.
func WrapConfigList(a alloc.Allocator, own Ownership, items []*propconfig.PropertyConfig, opts ...Option) *ConfigList {
	l := &ConfigList{}
	l.setup("ConfigList", a, own, items, propconfig.Delete, opts)
	return l
}

// Acquire adds a holder and returns the same list for the new holder.
func (l *ConfigList) Acquire() (*ConfigList, error) {
	if err := l.acquire(); err != nil {
		return nil, err
	}
	return l, nil
}

// Find returns the first descriptor for prop.
func (l *ConfigList) Find(prop int32) (*propconfig.PropertyConfig, bool) {
	for c := range l.All() {
		if c.Prop == prop {
			return c, true
		}
	}
	return nil, false
}

// AppendClone appends a deep copy of src manufactured by the list. Only
// owning lists accept clones.
func (l *ConfigList) AppendClone(src *propconfig.PropertyConfig) error {
	if l.own != Owning {
		return fmt.Errorf("%w: %s", ErrNotOwning, l.id)
	}
	if !l.Live() {
		return fmt.Errorf("%w: %s", ErrReleased, l.id)
	}

	c, err := propconfig.Clone(l.alloc, src)
	if err != nil {
		return err
	}
	l.items = append(l.items, c)
	return nil
}
