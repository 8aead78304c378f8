// Package fixture decodes documents describing property values and property
// configs, and materialises them as allocator-accounted records. Documents
// are YAML; JSON documents parse as well.
//
//	values:
//	  - prop: 0x11100101
//	    type: string
//	    string: "1HGCM82633A004352"
//	  - prop: 0x11600207
//	    type: int32_vec2
//	    int32: [90, 100]
//	configs:
//	  - prop: 0x11100101
//	    type: string
//	    access: read
//	    change_mode: static
//	    config_string: "vin"
package fixture

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tailored-agentic-units/vehiclenet/alloc"
	"github.com/tailored-agentic-units/vehiclenet/propconfig"
	"github.com/tailored-agentic-units/vehiclenet/value"
)

// ErrInvalidDocument is returned when a document does not describe valid
// values or configs.
var ErrInvalidDocument = errors.New("invalid fixture document")

// Document is a decoded fixture file.
type Document struct {
	Values  []Value  `yaml:"values"`
	Configs []Config `yaml:"configs"`
}

// Value describes one property value. Only the fields matching Type are used.
type Value struct {
	Prop      int32     `yaml:"prop"`
	Type      string    `yaml:"type"`
	Timestamp int64     `yaml:"timestamp,omitempty"`
	Zone      int32     `yaml:"zone,omitempty"`
	String    string    `yaml:"string,omitempty"`
	Hex       string    `yaml:"hex,omitempty"` // Bytes payload.
	Int32     []int32   `yaml:"int32,omitempty"`
	Int64     int64     `yaml:"int64,omitempty"`
	Float     []float32 `yaml:"float,omitempty"`
	Bool      bool      `yaml:"bool,omitempty"`
}

// Config describes one property descriptor.
type Config struct {
	Prop            int32   `yaml:"prop"`
	Type            string  `yaml:"type"`
	Access          string  `yaml:"access"`
	ChangeMode      string  `yaml:"change_mode"`
	PermissionModel string  `yaml:"permission_model,omitempty"`
	ConfigFlags     int32   `yaml:"config_flags,omitempty"`
	ConfigString    string  `yaml:"config_string,omitempty"`
	MinSampleRate   float32 `yaml:"min_sample_rate,omitempty"`
	MaxSampleRate   float32 `yaml:"max_sample_rate,omitempty"`
	Int32Min        int32   `yaml:"int32_min,omitempty"`
	Int32Max        int32   `yaml:"int32_max,omitempty"`
	Int64Min        int64   `yaml:"int64_min,omitempty"`
	Int64Max        int64   `yaml:"int64_max,omitempty"`
	FloatMin        float32 `yaml:"float_min,omitempty"`
	FloatMax        float32 `yaml:"float_max,omitempty"`
}

// Parse decodes and validates a document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads and parses a document file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return Parse(data)
}

func (d *Document) validate() error {
	for i, v := range d.Values {
		if _, err := v.build(); err != nil {
			return fmt.Errorf("%w: values[%d]: %v", ErrInvalidDocument, i, err)
		}
	}
	for i, c := range d.Configs {
		if _, err := c.build(); err != nil {
			return fmt.Errorf("%w: configs[%d]: %v", ErrInvalidDocument, i, err)
		}
	}
	return nil
}

// AllocValues allocates one record per described value. The records belong
// to the caller (typically an owning holder.ValueList). On error nothing stays
// allocated.
func (d *Document) AllocValues(a alloc.Allocator) ([]*value.PropertyValue, error) {
	out := make([]*value.PropertyValue, 0, len(d.Values))
	for i, desc := range d.Values {
		var v *value.PropertyValue
		err := value.WithScoped(a, func(tmp *value.PropertyValue) error {
			if err := desc.fill(a, tmp); err != nil {
				return err
			}
			var err error
			v, err = value.AllocCopy(a, tmp)
			return err
		})
		if err != nil {
			err = fmt.Errorf("values[%d]: %w", i, err)
			for _, done := range out {
				err = errors.Join(err, value.Delete(a, done))
			}
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// AllocConfigs allocates one descriptor per described config, with the same
// ownership rules as AllocValues.
func (d *Document) AllocConfigs(a alloc.Allocator) ([]*propconfig.PropertyConfig, error) {
	out := make([]*propconfig.PropertyConfig, 0, len(d.Configs))
	for i, desc := range d.Configs {
		c, err := desc.allocate(a)
		if err != nil {
			err = fmt.Errorf("configs[%d]: %w", i, err)
			for _, done := range out {
				err = errors.Join(err, propconfig.Delete(a, done))
			}
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// build converts the scalar fields; buffers are attached by fill.
func (s *Value) build() (value.PropertyValue, error) {
	typ, err := value.ParseValueType(s.Type)
	if err != nil {
		return value.PropertyValue{}, err
	}

	v := value.PropertyValue{Prop: s.Prop, ValueType: typ, Timestamp: s.Timestamp, Zone: s.Zone}
	if len(s.Int32) > 4 || len(s.Float) > 4 {
		return v, fmt.Errorf("property 0x%x: more than 4 components", s.Prop)
	}
	copy(v.Payload.Int32s[:], s.Int32)
	copy(v.Payload.Floats[:], s.Float)
	v.Payload.Int64 = s.Int64
	v.Payload.Boolean = s.Bool

	if typ == value.TypeBytes {
		if _, err := hex.DecodeString(s.Hex); err != nil {
			return v, fmt.Errorf("property 0x%x: %v", s.Prop, err)
		}
	}
	return v, nil
}

func (s *Value) fill(a alloc.Allocator, dst *value.PropertyValue) error {
	v, err := s.build()
	if err != nil {
		return err
	}
	*dst = v

	switch v.ValueType {
	case value.TypeString:
		return dst.SetString(a, s.String)
	case value.TypeBytes:
		b, _ := hex.DecodeString(s.Hex)
		return dst.SetBytes(a, b)
	}
	return nil
}

func (s *Config) build() (propconfig.PropertyConfig, error) {
	var c propconfig.PropertyConfig

	typ, err := value.ParseValueType(s.Type)
	if err != nil {
		return c, err
	}
	access, err := propconfig.ParseAccess(s.Access)
	if err != nil {
		return c, err
	}
	mode, err := propconfig.ParseChangeMode(s.ChangeMode)
	if err != nil {
		return c, err
	}
	perm := propconfig.PermissionNoRestriction
	if s.PermissionModel != "" {
		if perm, err = propconfig.ParsePermissionModel(s.PermissionModel); err != nil {
			return c, err
		}
	}

	c = propconfig.PropertyConfig{
		Prop:            s.Prop,
		ValueType:       typ,
		Access:          access,
		ChangeMode:      mode,
		PermissionModel: perm,
		ConfigFlags:     s.ConfigFlags,
		MinSampleRate:   s.MinSampleRate,
		MaxSampleRate:   s.MaxSampleRate,
		Int32Min:        s.Int32Min,
		Int32Max:        s.Int32Max,
		Int64Min:        s.Int64Min,
		Int64Max:        s.Int64Max,
		FloatMin:        s.FloatMin,
		FloatMax:        s.FloatMax,
	}
	return c, nil
}

func (s *Config) allocate(a alloc.Allocator) (out *propconfig.PropertyConfig, err error) {
	c, err := s.build()
	if err != nil {
		return nil, err
	}
	defer func() {
		if derr := propconfig.DeleteMembers(a, &c); derr != nil {
			err = errors.Join(err, derr)
			if out != nil {
				err = errors.Join(err, propconfig.Delete(a, out))
				out = nil
			}
		}
	}()

	if err := c.SetConfigString(a, s.ConfigString); err != nil {
		return nil, err
	}
	return propconfig.Clone(a, &c)
}
