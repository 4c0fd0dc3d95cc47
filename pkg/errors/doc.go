// Package errors provides structured error types for programmatic error
// handling across version resolution.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeUnparsablePath,
//	    "no version token in path",
//	    map[string]interface{}{
//	        "path": path,
//	    },
//	)
//
// Callers branch on codes with IsCode:
//
//	if errors.IsCode(err, errors.ErrCodeNoVersionSource) {
//	    // fatal configuration error at startup
//	}
package errors
