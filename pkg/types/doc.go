// Package types defines the public constants and error categories shared by
// the unixreg packages.
//
// The root keys, access masks and value types use the same names and numeric
// values as the Windows registry API so that registry-style code can be
// compiled against this module unchanged. None of the access bits are
// enforced and value types are not interpreted: every value is stored as
// text.
//
// Errors carry a stable ErrKind (type/not-found/unsupported/not-implemented/
// format) and match the package sentinels through errors.Is.
//
// This package has no dependencies beyond the standard library.
package types
