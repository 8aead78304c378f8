package propconfig

import (
	"fmt"
	"strings"
)

// Access is the read/write permission of a property.
type Access int32

const (
	AccessRead      Access = 0x01
	AccessWrite     Access = 0x02
	AccessReadWrite Access = 0x03
)

func (a Access) String() string {
	switch a {
	case AccessRead:
		return "read"
	case AccessWrite:
		return "write"
	case AccessReadWrite:
		return "read_write"
	default:
		return fmt.Sprintf("Access(%d)", int32(a))
	}
}

// Readable reports whether values may be read.
func (a Access) Readable() bool { return a&AccessRead != 0 }

// Writable reports whether values may be written.
func (a Access) Writable() bool { return a&AccessWrite != 0 }

// ChangeMode describes how a property reports updates.
type ChangeMode int32

const (
	ChangeStatic     ChangeMode = 0x00
	ChangeOnChange   ChangeMode = 0x01
	ChangeContinuous ChangeMode = 0x02
	ChangePoll       ChangeMode = 0x03
	ChangeOnSet      ChangeMode = 0x04
)

func (m ChangeMode) String() string {
	switch m {
	case ChangeStatic:
		return "static"
	case ChangeOnChange:
		return "on_change"
	case ChangeContinuous:
		return "continuous"
	case ChangePoll:
		return "poll"
	case ChangeOnSet:
		return "on_set"
	default:
		return fmt.Sprintf("ChangeMode(%d)", int32(m))
	}
}

// PermissionModel restricts which clients may access a property.
type PermissionModel int32

const (
	PermissionNoRestriction  PermissionModel = 0x00
	PermissionOEMOnly        PermissionModel = 0x01
	PermissionSystemAppOnly  PermissionModel = 0x02
	PermissionOEMOrSystemApp PermissionModel = 0x03
)

func (p PermissionModel) String() string {
	switch p {
	case PermissionNoRestriction:
		return "no_restriction"
	case PermissionOEMOnly:
		return "oem_only"
	case PermissionSystemAppOnly:
		return "system_app_only"
	case PermissionOEMOrSystemApp:
		return "oem_or_system_app"
	default:
		return fmt.Sprintf("PermissionModel(%d)", int32(p))
	}
}

// ParseAccess resolves an access name as produced by String.
func ParseAccess(s string) (Access, error) {
	for _, a := range []Access{AccessRead, AccessWrite, AccessReadWrite} {
		if strings.EqualFold(strings.TrimSpace(s), a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: access %q", ErrUnknownEnum, s)
}

// ParseChangeMode resolves a change mode name as produced by String.
func ParseChangeMode(s string) (ChangeMode, error) {
	for _, m := range []ChangeMode{ChangeStatic, ChangeOnChange, ChangeContinuous, ChangePoll, ChangeOnSet} {
		if strings.EqualFold(strings.TrimSpace(s), m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: change mode %q", ErrUnknownEnum, s)
}

// ParsePermissionModel resolves a permission model name as produced by String.
func ParsePermissionModel(s string) (PermissionModel, error) {
	for _, p := range []PermissionModel{PermissionNoRestriction, PermissionOEMOnly, PermissionSystemAppOnly, PermissionOEMOrSystemApp} {
		if strings.EqualFold(strings.TrimSpace(s), p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: permission model %q", ErrUnknownEnum, s)
}
