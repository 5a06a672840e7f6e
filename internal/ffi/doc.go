// Package ffi converts native types and declarations into their flat,
// C-compatible boundary form.
//
// Mapper.Map decides, for one type in parameter or return position, which
// type crosses the boundary and which Conversion the generated code must
// apply. Mapper.Signature applies it to a whole function for one
// AllocationPlace, adding the receiver and return-buffer arguments.
//
// Every failure is a per-declaration outcome: ErrUnsupportedType for
// constructs that cannot cross the boundary, an assertion failure for
// violated mapper invariants. Callers skip the declaration and continue.
package ffi
