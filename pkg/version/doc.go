// Package version provides parsing and comparison for Omicron release tokens.
//
// Omicron releases are identified by tokens of the form "vMAJORrREVISION"
// (e.g. "v2r1"), the naming convention of its install tree:
//
//	.../Omicron/<version>/<platform>/omicron.exe
//
// Tokens are ordered numerically by component, major first:
//
//	a := version.MustParse("v2r1")
//	b := version.MustParse("v10r0")
//	a.IsNewer(b) // false: 2 < 10, despite "v2r1" > "v10r0" as strings
//
// Parse is strict: anything other than "v<digits>r<digits>" is rejected with a
// sentinel error (ErrEmptyVersion, ErrMissingPrefix, ErrMalformed, ErrNonNumeric).
package version
