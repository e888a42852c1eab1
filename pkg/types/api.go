package types

import (
	"fmt"
	"strings"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindType           ErrKind = iota // argument outside the accepted set of types
	ErrKindNotFound                      // missing value
	ErrKindUnsupported                   // feature that cannot exist here (remote registry)
	ErrKindNotImplemented                // operation with no filesystem equivalent
	ErrKindFormat                        // malformed .reg input
)

// String returns a short name for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindType:
		return "type"
	case ErrKindNotFound:
		return "not-found"
	case ErrKindUnsupported:
		return "unsupported"
	case ErrKindNotImplemented:
		return "not-implemented"
	case ErrKindFormat:
		return "format"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, ErrNotFound) matches every not-found error regardless of
// message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrTypeContract indicates an argument of a type the API does not accept.
	ErrTypeContract = &Error{Kind: ErrKindType, Msg: "argument has unsupported type"}
	// ErrNotFound indicates a missing value.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrUnsupported indicates a feature that cannot be provided, such as a
	// connection to another computer's registry.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "not supported"}
	// ErrNotImplemented indicates an operation with no local-filesystem
	// equivalent (enumeration, flush, info query, load/save, reflection).
	ErrNotImplemented = &Error{Kind: ErrKindNotImplemented, Msg: "not implemented"}
	// ErrFormat indicates malformed .reg input.
	ErrFormat = &Error{Kind: ErrKindFormat, Msg: "malformed registry file"}
)

// TypeError builds a type-contract error naming the offending argument.
func TypeError(arg string, v any) error {
	return &Error{
		Kind: ErrKindType,
		Msg:  fmt.Sprintf("%s: %T is not a string, registry key or nil", arg, v),
	}
}

// NotImplemented builds a not-implemented error for the named operation.
func NotImplemented(op string) error {
	return &Error{Kind: ErrKindNotImplemented, Msg: op + ": not implemented"}
}

// -----------------------------------------------------------------------------
// Root keys
// -----------------------------------------------------------------------------

// RootKey identifies one of the predefined top-level registry keys.
// (The numbers align with Windows definitions.)
type RootKey uint32

const (
	HKEY_CLASSES_ROOT     RootKey = 0x80000000
	HKEY_CURRENT_USER     RootKey = 0x80000001
	HKEY_LOCAL_MACHINE    RootKey = 0x80000002
	HKEY_USERS            RootKey = 0x80000003
	HKEY_PERFORMANCE_DATA RootKey = 0x80000004
	HKEY_CURRENT_CONFIG   RootKey = 0x80000005
	HKEY_DYN_DATA         RootKey = 0x80000006
)

// RootKeys lists every predefined root in numeric order.
var RootKeys = []RootKey{
	HKEY_CLASSES_ROOT,
	HKEY_CURRENT_USER,
	HKEY_LOCAL_MACHINE,
	HKEY_USERS,
	HKEY_PERFORMANCE_DATA,
	HKEY_CURRENT_CONFIG,
	HKEY_DYN_DATA,
}

// String implements the Stringer interface for RootKey.
func (k RootKey) String() string {
	switch k {
	case HKEY_CLASSES_ROOT:
		return "HKEY_CLASSES_ROOT"
	case HKEY_CURRENT_USER:
		return "HKEY_CURRENT_USER"
	case HKEY_LOCAL_MACHINE:
		return "HKEY_LOCAL_MACHINE"
	case HKEY_USERS:
		return "HKEY_USERS"
	case HKEY_PERFORMANCE_DATA:
		return "HKEY_PERFORMANCE_DATA"
	case HKEY_CURRENT_CONFIG:
		return "HKEY_CURRENT_CONFIG"
	case HKEY_DYN_DATA:
		return "HKEY_DYN_DATA"
	default:
		return fmt.Sprintf("HKEY_0x%08X", uint32(k))
	}
}

// ParseRootKey maps a root name or its common abbreviation (case-insensitive)
// to a RootKey.
func ParseRootKey(name string) (RootKey, bool) {
	switch strings.ToUpper(name) {
	case "HKEY_CLASSES_ROOT", "HKCR":
		return HKEY_CLASSES_ROOT, true
	case "HKEY_CURRENT_USER", "HKCU":
		return HKEY_CURRENT_USER, true
	case "HKEY_LOCAL_MACHINE", "HKLM":
		return HKEY_LOCAL_MACHINE, true
	case "HKEY_USERS", "HKU":
		return HKEY_USERS, true
	case "HKEY_PERFORMANCE_DATA":
		return HKEY_PERFORMANCE_DATA, true
	case "HKEY_CURRENT_CONFIG", "HKCC":
		return HKEY_CURRENT_CONFIG, true
	case "HKEY_DYN_DATA":
		return HKEY_DYN_DATA, true
	default:
		return 0, false
	}
}

// -----------------------------------------------------------------------------
// Access rights
// -----------------------------------------------------------------------------

// Access is the access-mask requested when opening or creating a key.
// It is recorded on the key and never enforced.
type Access uint32

const (
	KEY_QUERY_VALUE        Access = 0x0001
	KEY_SET_VALUE          Access = 0x0002
	KEY_CREATE_SUB_KEY     Access = 0x0004
	KEY_ENUMERATE_SUB_KEYS Access = 0x0008
	KEY_NOTIFY             Access = 0x0010
	KEY_CREATE_LINK        Access = 0x0020
	KEY_WOW64_64KEY        Access = 0x0100
	KEY_WOW64_32KEY        Access = 0x0200

	STANDARD_RIGHTS_REQUIRED Access = 0x000F0000
	STANDARD_RIGHTS_READ     Access = 0x00020000
	STANDARD_RIGHTS_WRITE    Access = 0x00020000
	SYNCHRONIZE              Access = 0x00100000

	KEY_READ       = (STANDARD_RIGHTS_READ | KEY_QUERY_VALUE | KEY_ENUMERATE_SUB_KEYS | KEY_NOTIFY) &^ SYNCHRONIZE
	KEY_WRITE      = (STANDARD_RIGHTS_WRITE | KEY_SET_VALUE | KEY_CREATE_SUB_KEY) &^ SYNCHRONIZE
	KEY_EXECUTE    = KEY_READ
	KEY_ALL_ACCESS = (STANDARD_RIGHTS_REQUIRED | KEY_QUERY_VALUE | KEY_SET_VALUE | KEY_CREATE_SUB_KEY |
		KEY_ENUMERATE_SUB_KEYS | KEY_NOTIFY | KEY_CREATE_LINK) &^ SYNCHRONIZE
)

// Has reports whether every bit of flag is set.
func (a Access) Has(flag Access) bool { return a&flag == flag }

// -----------------------------------------------------------------------------
// Value types
// -----------------------------------------------------------------------------

// RegType enumerates Windows registry value types.
// (The numbers align with Windows definitions.)
// Values are stored as text regardless of type; the type is accepted so that
// registry-style call sites compile unchanged.
type RegType uint32

const (
	REG_NONE                       RegType = 0
	REG_SZ                         RegType = 1
	REG_EXPAND_SZ                  RegType = 2
	REG_BINARY                     RegType = 3
	REG_DWORD                      RegType = 4
	REG_DWORD_LITTLE_ENDIAN        RegType = 4 // alias for clarity
	REG_DWORD_BIG_ENDIAN           RegType = 5
	REG_LINK                       RegType = 6
	REG_MULTI_SZ                   RegType = 7
	REG_RESOURCE_LIST              RegType = 8
	REG_FULL_RESOURCE_DESCRIPTOR   RegType = 9
	REG_RESOURCE_REQUIREMENTS_LIST RegType = 10
	REG_QWORD                      RegType = 11
	REG_QWORD_LITTLE_ENDIAN        RegType = 11
)

// String implements the Stringer interface for RegType
func (t RegType) String() string {
	switch t {
	case REG_NONE:
		return "REG_NONE"
	case REG_SZ:
		return "REG_SZ"
	case REG_EXPAND_SZ:
		return "REG_EXPAND_SZ"
	case REG_BINARY:
		return "REG_BINARY"
	case REG_DWORD:
		return "REG_DWORD"
	case REG_DWORD_BIG_ENDIAN:
		return "REG_DWORD_BIG_ENDIAN"
	case REG_LINK:
		return "REG_LINK"
	case REG_MULTI_SZ:
		return "REG_MULTI_SZ"
	case REG_RESOURCE_LIST:
		return "REG_RESOURCE_LIST"
	case REG_FULL_RESOURCE_DESCRIPTOR:
		return "REG_FULL_RESOURCE_DESCRIPTOR"
	case REG_RESOURCE_REQUIREMENTS_LIST:
		return "REG_RESOURCE_REQUIREMENTS_LIST"
	case REG_QWORD:
		return "REG_QWORD"
	default:
		return fmt.Sprintf("UNKNOWN_TYPE_%d", int32(t))
	}
}

// ParseRegType maps a short CLI-style type name ("sz", "dword", ...) or a
// REG_* name to a RegType.
func ParseRegType(name string) (RegType, bool) {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "REG_")
	switch n {
	case "NONE":
		return REG_NONE, true
	case "SZ", "STRING":
		return REG_SZ, true
	case "EXPAND_SZ":
		return REG_EXPAND_SZ, true
	case "BINARY":
		return REG_BINARY, true
	case "DWORD":
		return REG_DWORD, true
	case "DWORD_BIG_ENDIAN":
		return REG_DWORD_BIG_ENDIAN, true
	case "LINK":
		return REG_LINK, true
	case "MULTI_SZ":
		return REG_MULTI_SZ, true
	case "QWORD":
		return REG_QWORD, true
	default:
		return 0, false
	}
}
