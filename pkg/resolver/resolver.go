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

package resolver

import (
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gw-detchar/omicron-env/pkg/errors"
	"github.com/gw-detchar/omicron-env/pkg/version"
)

// Environment variables consumed during resolution.
const (
	// EnvVersion overrides the resolved version token directly.
	EnvVersion = "OMICRON_VERSION"
	// EnvRoot is the Omicron installation root, expected to end in the
	// version directory, e.g. /opt/virgosoft/Omicron/v2r1.
	EnvRoot = "OMICRONROOT"
)

// Lookup is the environment lookup capability used by a Resolver.
// It matches the signature of os.LookupEnv. Injecting it keeps the
// resolver free of hidden global state and testable without mutating
// the process environment.
type Lookup func(key string) (string, bool)

// Source identifies which precedence step produced a resolution.
type Source string

const (
	// SourcePath means the version was extracted from an explicit path.
	SourcePath Source = "path"
	// SourceOverride means OMICRON_VERSION supplied the token.
	SourceOverride Source = "override"
	// SourceRoot means the token is the final segment of OMICRONROOT.
	SourceRoot Source = "root"
)

// Resolution is the result of a successful version resolution.
type Resolution struct {
	Version version.Version `json:"version" yaml:"version"`
	Source  Source          `json:"source" yaml:"source"`
}

// Resolver determines the installed Omicron version from an explicit
// executable path or from the environment. It performs no filesystem
// existence checks during resolution; only path text and environment
// values are consulted.
type Resolver struct {
	lookup Lookup
}

// New creates a Resolver backed by the real process environment.
func New() *Resolver {
	return &Resolver{lookup: os.LookupEnv}
}

// NewWithLookup creates a Resolver with a custom environment lookup.
// A nil lookup falls back to os.LookupEnv.
func NewWithLookup(lookup Lookup) *Resolver {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &Resolver{lookup: lookup}
}

// Resolve determines the effective Omicron version. Precedence, first
// match wins:
//
//  1. a non-empty path argument, scanned for a version token segment
//  2. the OMICRON_VERSION override variable
//  3. the final path segment of OMICRONROOT
//
// The environment is consulted at call time on every invocation; nothing
// is cached between calls. On failure no partial or default token is ever
// fabricated: the error carries a structured code (UNPARSABLE_PATH,
// INVALID_VERSION, or NO_VERSION_SOURCE).
func (r *Resolver) Resolve(execPath string) (Resolution, error) {
	if execPath != "" {
		v, err := versionFromPath(execPath)
		if err != nil {
			return Resolution{}, err
		}
		slog.Debug("resolved omicron version", "version", v, "source", SourcePath)
		return Resolution{Version: v, Source: SourcePath}, nil
	}

	if val, ok := r.lookup(EnvVersion); ok && val != "" {
		v, err := version.Parse(val)
		if err != nil {
			return Resolution{}, errors.WrapWithContext(
				errors.ErrCodeInvalidVersion,
				"invalid version override",
				err,
				map[string]any{"variable": EnvVersion, "value": val},
			)
		}
		slog.Debug("resolved omicron version", "version", v, "source", SourceOverride)
		return Resolution{Version: v, Source: SourceOverride}, nil
	}

	if root, ok := r.lookup(EnvRoot); ok && root != "" {
		token := path.Base(filepath.ToSlash(root))
		v, err := version.Parse(token)
		if err != nil {
			return Resolution{}, errors.WrapWithContext(
				errors.ErrCodeInvalidVersion,
				"installation root does not end in a version directory",
				err,
				map[string]any{"variable": EnvRoot, "value": root},
			)
		}
		slog.Debug("resolved omicron version", "version", v, "source", SourceRoot)
		return Resolution{Version: v, Source: SourceRoot}, nil
	}

	return Resolution{}, errors.NewWithContext(
		errors.ErrCodeNoVersionSource,
		"no version source available",
		map[string]any{"checked": []string{EnvVersion, EnvRoot}},
	)
}

// Version resolves the effective version and returns the token alone.
func (r *Resolver) Version(execPath string) (version.Version, error) {
	res, err := r.Resolve(execPath)
	if err != nil {
		return version.Version{}, err
	}
	return res.Version, nil
}

// Version resolves the effective Omicron version against the real process
// environment. Pass an empty path to resolve from the environment alone.
func Version(execPath string) (version.Version, error) {
	return New().Version(execPath)
}

// versionFromPath scans the slash-separated segments of p for version
// tokens. The install tree embeds the version as a directory segment
// (.../Omicron/<version>/<platform>/omicron.exe) but the scan is depth
// independent: exactly one distinct token must appear anywhere in the
// path. Zero matches, or multiple differing matches, fail with
// UNPARSABLE_PATH.
func versionFromPath(p string) (version.Version, error) {
	var (
		found   version.Version
		matched bool
	)

	for _, seg := range strings.Split(filepath.ToSlash(p), "/") {
		v, err := version.Parse(seg)
		if err != nil {
			continue
		}
		if matched && !v.Equals(found) {
			return version.Version{}, errors.NewWithContext(
				errors.ErrCodeUnparsablePath,
				"path contains multiple differing version tokens",
				map[string]any{"path": p, "first": found.String(), "second": v.String()},
			)
		}
		found = v
		matched = true
	}

	if !matched {
		return version.Version{}, errors.NewWithContext(
			errors.ErrCodeUnparsablePath,
			"no version token in path",
			map[string]any{"path": p},
		)
	}
	return found, nil
}
