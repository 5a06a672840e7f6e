// Package gen renders the C header that declares a crate's boundary
// functions.
//
// Only items whose boundary functions compiled in every requested
// environment are emitted. The header includes the native headers the
// declarations came from and wraps the prototypes in extern "C":
//
//	// class QPoint
//
//	// QPoint::QPoint(int x, int y) [Heap]
//	QPoint* QPoint_new(int x, int y);
//
// Sections follow the class inheritance order of the ledger so base
// classes come before derived ones; free functions come last.
package gen
