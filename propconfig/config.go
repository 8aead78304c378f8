// Package propconfig defines PropertyConfig, the static descriptor of a
// vehicle property, and the helpers that release its owned config string.
package propconfig

import (
	"errors"
	"fmt"

	"github.com/tailored-agentic-units/vehiclenet/alloc"
	"github.com/tailored-agentic-units/vehiclenet/value"
)

// PropertyConfig describes one property. Descriptors are produced once and
// then treated as read-only. The config string is owned by the descriptor;
// plain assignment makes two descriptors share it, use Clone instead.
type PropertyConfig struct {
	Prop            int32
	ValueType       value.ValueType
	Access          Access
	ChangeMode      ChangeMode
	PermissionModel PermissionModel
	ConfigFlags     int32
	MinSampleRate   float32 // Hz, continuous properties only.
	MaxSampleRate   float32
	Int32Min        int32
	Int32Max        int32
	Int64Min        int64
	Int64Max        int64
	FloatMin        float32
	FloatMax        float32

	configString []byte
}

// ConfigString returns the config string. The result is a copy.
func (c *PropertyConfig) ConfigString() string {
	return string(c.configString)
}

// ConfigStringLen returns the length of the owned config string.
func (c *PropertyConfig) ConfigStringLen() int {
	return len(c.configString)
}

// SetConfigString replaces the config string with an owned copy of s. An
// empty s clears it. On failure c is unchanged.
func (c *PropertyConfig) SetConfigString(a alloc.Allocator, s string) error {
	var buf []byte
	if len(s) > 0 {
		b, err := a.Bytes(len(s))
		if err != nil {
			return fmt.Errorf("config string for property 0x%x: %w", c.Prop, err)
		}
		copy(b, s)
		buf = b
	}
	if err := DeleteMembers(a, c); err != nil {
		return errors.Join(err, a.FreeBytes(buf))
	}
	c.configString = buf
	return nil
}

// DeleteMembers frees the config string of c and clears it. It is the only
// cleanup needed for a descriptor that is not heap-accounted, and is safe to
// call more than once.
func DeleteMembers(a alloc.Allocator, c *PropertyConfig) error {
	if c == nil || c.configString == nil {
		return nil
	}
	buf := c.configString
	c.configString = nil
	return a.FreeBytes(buf)
}

// Clone allocates a new descriptor holding a deep copy of c. The result must
// be freed with Delete.
func Clone(a alloc.Allocator, c *PropertyConfig) (*PropertyConfig, error) {
	out := new(PropertyConfig)
	if err := a.Record(out); err != nil {
		return nil, fmt.Errorf("alloc config 0x%x: %w", c.Prop, err)
	}

	*out = *c
	out.configString = nil
	if err := out.SetConfigString(a, c.ConfigString()); err != nil {
		return nil, errors.Join(err, a.FreeRecord(out))
	}
	return out, nil
}

// Delete releases the config string of a descriptor obtained from Clone, then
// the descriptor itself.
func Delete(a alloc.Allocator, c *PropertyConfig) error {
	if c == nil {
		return nil
	}
	return errors.Join(DeleteMembers(a, c), a.FreeRecord(c))
}
