// Package cppdecl models the declarations discovered in a native library.
//
// Item is a closed tagged union over namespaces, types, enum values,
// functions, class fields, base-class edges, template instantiations and
// signal argument sets. IsSame compares only the structural signature of a
// declaration; provenance and documentation never take part, so the same
// declaration reported by the parser and by a synthesized pass is one item.
package cppdecl
