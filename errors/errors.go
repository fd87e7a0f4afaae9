// Package errors provides error handling for lerpgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints shown to the user next to a failure
//   - Marking errors so callers can test for a failure category with Is
//
// Usage:
//
//	// Wrap with context
//	if err := loadPackage(dir); err != nil {
//	    return errors.Wrapf(err, "failed to load %s", dir)
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "run `go generate ./...` to refresh it")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	As            = crdb.As
	Mark          = crdb.Mark
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Sentinel errors for the lerpgen command.
// Use these with errors.Is() for type-safe error checking.
var (
	// ErrNotFound indicates a requested type does not exist in the package
	ErrNotFound = New("not found")

	// ErrGenerationFailed indicates at least one struct produced a diagnostic.
	// The fallback implementation has still been written.
	ErrGenerationFailed = New("generation failed")

	// ErrOutOfDate indicates a generated file no longer matches its source
	ErrOutOfDate = New("generated code is out of date")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrNotFound)
}
