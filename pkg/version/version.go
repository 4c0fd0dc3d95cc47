// Copyright (c) 2025, GW-DetChar Developers.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion  = errors.New("version string is empty")
	ErrMissingPrefix = errors.New("version string does not start with 'v'")
	ErrMalformed     = errors.New("version string is not in vMAJORrREVISION form")
	ErrNonNumeric    = errors.New("version component is not numeric")
)

// Version represents an Omicron release identifier of the form vMAJORrREVISION
// (e.g. "v2r1"). Both components are non-negative integers rendered without
// leading zeros. Omicron does not follow semantic versioning; the 'r' separator
// is the native convention of its release tree.
type Version struct {
	Major    int `json:"major" yaml:"major"`
	Revision int `json:"revision" yaml:"revision"`
}

// NewVersion creates a new Version with the specified major and revision values.
// Use Parse for parsing version token strings.
func NewVersion(major, revision int) Version {
	return Version{
		Major:    major,
		Revision: revision,
	}
}

// String returns the canonical token form "vMAJORrREVISION".
func (v Version) String() string {
	return fmt.Sprintf("v%dr%d", v.Major, v.Revision)
}

// Parse parses a version token string into a Version.
// The only accepted shape is "v<major>r<revision>" where both components are
// non-negative base-10 integers, e.g. "v2r1" or "v10r3".
// Returns an error if the token is empty, lacks the 'v' prefix, lacks the 'r'
// separator, or has a non-numeric component.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}
	if !strings.HasPrefix(s, "v") {
		return Version{}, fmt.Errorf("%w: %q", ErrMissingPrefix, s)
	}

	body := s[1:]
	sep := strings.IndexByte(body, 'r')
	if sep < 0 {
		return Version{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	major, err := parseComponent(body[:sep])
	if err != nil {
		return Version{}, err
	}
	revision, err := parseComponent(body[sep+1:])
	if err != nil {
		return Version{}, err
	}

	return Version{Major: major, Revision: revision}, nil
}

// parseComponent parses a single version component, accepting digits only.
// strconv.Atoi alone is too permissive here (it accepts "+1" and "-1").
func parseComponent(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty component", ErrMalformed)
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return 0, fmt.Errorf("%w: %q", ErrNonNumeric, s)
		}
	}
	num, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNonNumeric, s)
	}
	return num, nil
}

// MustParse parses a version token and panics if parsing fails.
// Only use this for hardcoded strings or in tests. For runtime data,
// always use Parse and handle errors explicitly.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// IsToken reports whether s is a well-formed version token.
func IsToken(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Compare returns an integer comparing two versions numerically by component:
// -1 if v < other, 0 if v == other, 1 if v > other.
// Major is compared first, then Revision. For tokens with equal-width
// components this matches plain string ordering; for mixed widths
// (e.g. v10r0 vs v2r0) only the numeric comparison is correct.
func (v Version) Compare(other Version) int {
	if v.Major < other.Major {
		return -1
	}
	if v.Major > other.Major {
		return 1
	}
	if v.Revision < other.Revision {
		return -1
	}
	if v.Revision > other.Revision {
		return 1
	}
	return 0
}

// IsNewer returns true if v is strictly newer than other.
func (v Version) IsNewer(other Version) bool {
	return v.Compare(other) > 0
}

// EqualsOrNewer returns true if v is equal to or newer than other.
func (v Version) EqualsOrNewer(other Version) bool {
	return v.Compare(other) >= 0
}

// Equals returns true if both components match exactly.
func (v Version) Equals(other Version) bool {
	return v.Major == other.Major && v.Revision == other.Revision
}

// IsValid returns true if both components are non-negative.
func (v Version) IsValid() bool {
	return v.Major >= 0 && v.Revision >= 0
}
