// Package errors provides error handling for bindgen-core.
//
// This package re-exports github.com/cockroachdb/errors so every package
// wraps, marks and inspects errors the same way:
//
//	if err := mapper.Map(t, false); err != nil {
//	    return errors.Wrapf(err, "argument %q", name)
//	}
//
// Invariant violations inside the binding core are reported with
// AssertionFailedf and detected with HasAssertionFailure; they are fatal
// for the declaration being processed, never for the run.
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
	Mark         = crdb.Mark
	Join         = crdb.Join

	CombineErrors = crdb.CombineErrors
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
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf    = crdb.AssertionFailedf
	HasAssertionFailure = crdb.HasAssertionFailure
)

// IsInvariantViolation reports whether err carries an assertion failure
// raised by one of the core's own contract checks.
func IsInvariantViolation(err error) bool {
	return err != nil && HasAssertionFailure(err)
}
