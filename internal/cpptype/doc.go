// Package cpptype provides the closed model of native (C++) types used by
// every stage of binding generation.
//
// A Type is a Base plus two orthogonal decorations: constness and
// Indirection. A Class base with IndirectionNone denotes pass-by-value.
//
// Key operations:
//   - SourceCode: canonical C++ spelling. Template parameters and variadic
//     function pointers cannot be rendered and yield ErrUnsupported.
//   - Caption: short identifier-safe label used to build boundary names.
//   - Equal: structural equality, ignoring fields that do not belong to
//     the base's kind.
package cpptype
