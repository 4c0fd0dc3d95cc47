// Package resolver determines the version and location of the external
// Omicron signal-processing executable.
//
// Omicron installs follow a fixed tree convention:
//
//	<prefix>/Omicron/<version>/<platform>/omicron.exe
//
// e.g. /home/detchar/opt/virgosoft/Omicron/v2r1/Linux-x86_64/omicron.exe.
//
// The effective version is resolved with a fixed precedence chain, first
// match wins:
//
//  1. an explicit executable path, scanned for a version token segment
//  2. the OMICRON_VERSION environment variable (explicit override)
//  3. the final segment of OMICRONROOT (installation root)
//
// Resolution is pure string and environment work: no filesystem existence
// checks, no process calls, no caching between calls. Callers treat a
// resolution failure as a fatal configuration error at startup.
//
//	v, err := resolver.Version("")
//	if err != nil {
//	    // [NO_VERSION_SOURCE] no version source available
//	}
package resolver
