// Package cli implements the command-line interface for the omicron-env tool.
//
// # Commands
//
// version - Resolve the effective Omicron version:
//
//	omicron-env version [--path P] [--output FILE] [--format yaml|json|table]
//
// Resolves the installed version token using the fixed precedence chain
// (explicit path, OMICRON_VERSION, OMICRONROOT) and prints the token and
// the source that produced it.
//
// which - Locate the Omicron executable:
//
//	omicron-env which [--output FILE] [--format yaml|json|table]
//
// list - List versions in an install tree:
//
//	omicron-env list [--dir DIR] [--output FILE] [--format yaml|json|table]
//
// # Global Flags
//
//	--log-level    Log verbosity: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show build information
//
// # Environment Variables
//
//	OMICRON_VERSION  Explicit version override token
//	OMICRONROOT      Omicron installation root (.../Omicron/<version>)
//	LOG_LEVEL        Log verbosity when --log-level is not given
//
// # Exit Codes
//
//	0  Success
//	1  Error (invalid arguments, resolution failure)
//
// The CLI uses the urfave/cli/v3 framework and delegates to:
//   - pkg/resolver - version and executable resolution
//   - pkg/serializer - output formatting
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/gw-detchar/omicron-env/pkg/cli.version=0.1.0'"
package cli
