// Package diagnostic collects per-declaration reports produced while a
// crate is processed.
//
// A failure to map or name one declaration never aborts a run; it becomes
// a Diagnostic carrying the declaration, the boundary function if one was
// involved, and a code:
//   - unsupported-type for types with no boundary representation
//   - no-unique-name when no caption strategy separates an overload group
//   - name-collision when two groups produce the same final name
//   - invariant-violation for broken internal contracts
//   - check-regression for checks that compiled before and fail now
package diagnostic
