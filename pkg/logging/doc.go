// Package logging provides structured logging utilities shared by the
// omicron-env library and CLI.
//
// It wraps the standard library slog package with project defaults:
// JSON output to stderr, environment-based level configuration (LOG_LEVEL),
// module/version context on every record, and source location tracking for
// debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("omicron-env", version)
//
//	    slog.Info("resolving version", "path", path)
//	    slog.Debug("detailed state", "lookup", key)
//	    slog.Error("resolution failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("omicron-env", "v0.1.0", "debug")
//	logger.Info("resolved", "version", v)
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given (debug, info, warn, error; default info):
//
//	LOG_LEVEL=debug omicron-env version
package logging
