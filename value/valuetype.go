package value

import (
	"fmt"
	"strings"
)

// ValueType is the discriminant of a PropertyValue payload. Values match the
// HAL numeric codes.
type ValueType int32

const (
	TypeString         ValueType = 0x01
	TypeBytes          ValueType = 0x02
	TypeBoolean        ValueType = 0x03
	TypeZonedBoolean   ValueType = 0x04
	TypeInt64          ValueType = 0x05
	TypeFloat          ValueType = 0x10
	TypeFloatVec2      ValueType = 0x11
	TypeFloatVec3      ValueType = 0x12
	TypeFloatVec4      ValueType = 0x13
	TypeInt32          ValueType = 0x20
	TypeInt32Vec2      ValueType = 0x21
	TypeInt32Vec3      ValueType = 0x22
	TypeInt32Vec4      ValueType = 0x23
	TypeZonedFloat     ValueType = 0x30
	TypeZonedFloatVec2 ValueType = 0x31
	TypeZonedFloatVec3 ValueType = 0x32
	TypeZonedFloatVec4 ValueType = 0x33
	TypeZonedInt32     ValueType = 0x40
	TypeZonedInt32Vec2 ValueType = 0x41
	TypeZonedInt32Vec3 ValueType = 0x42
	TypeZonedInt32Vec4 ValueType = 0x43
)

var typeNames = map[ValueType]string{
	TypeString:         "string",
	TypeBytes:          "bytes",
	TypeBoolean:        "boolean",
	TypeZonedBoolean:   "zoned_boolean",
	TypeInt64:          "int64",
	TypeFloat:          "float",
	TypeFloatVec2:      "float_vec2",
	TypeFloatVec3:      "float_vec3",
	TypeFloatVec4:      "float_vec4",
	TypeInt32:          "int32",
	TypeInt32Vec2:      "int32_vec2",
	TypeInt32Vec3:      "int32_vec3",
	TypeInt32Vec4:      "int32_vec4",
	TypeZonedFloat:     "zoned_float",
	TypeZonedFloatVec2: "zoned_float_vec2",
	TypeZonedFloatVec3: "zoned_float_vec3",
	TypeZonedFloatVec4: "zoned_float_vec4",
	TypeZonedInt32:     "zoned_int32",
	TypeZonedInt32Vec2: "zoned_int32_vec2",
	TypeZonedInt32Vec3: "zoned_int32_vec3",
	TypeZonedInt32Vec4: "zoned_int32_vec4",
}

func (t ValueType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ValueType(0x%02x)", int32(t))
}

// IsBuffer reports whether the payload of this type is a variable length buffer.
func (t ValueType) IsBuffer() bool {
	return t == TypeString || t == TypeBytes
}

// IsZoned reports whether values of this type carry a meaningful Zone.
func (t ValueType) IsZoned() bool {
	switch t {
	case TypeZonedBoolean, TypeZonedFloat, TypeZonedFloatVec2, TypeZonedFloatVec3, TypeZonedFloatVec4,
		TypeZonedInt32, TypeZonedInt32Vec2, TypeZonedInt32Vec3, TypeZonedInt32Vec4:
		return true
	}
	return false
}

// Components returns how many scalar slots a vector type uses; 1 for plain
// scalars and 0 for buffer kinds.
func (t ValueType) Components() int {
	switch t {
	case TypeString, TypeBytes:
		return 0
	case TypeFloatVec2, TypeInt32Vec2, TypeZonedFloatVec2, TypeZonedInt32Vec2:
		return 2
	case TypeFloatVec3, TypeInt32Vec3, TypeZonedFloatVec3, TypeZonedInt32Vec3:
		return 3
	case TypeFloatVec4, TypeInt32Vec4, TypeZonedFloatVec4, TypeZonedInt32Vec4:
		return 4
	}
	return 1
}

// ParseValueType resolves a type name as produced by String. Matching is
// case-insensitive.
func ParseValueType(s string) (ValueType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}
