// Package validation provides common validation utilities for arguments and
// configuration parameters across the bufkit library.
//
// The Validate* functions return a *errors.ValidationError so constructors
// can report bad configuration. The Must* variants panic with the same
// error and are used where an invalid argument indicates a bug in the
// calling code rather than a runtime condition.
package validation
