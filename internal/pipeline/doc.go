// Package pipeline drives one crate through the binding stages.
//
// A Processor loads the crate's ledger from the workspace together with
// the ledgers of its dependencies, runs the requested operations in order
// and saves the ledger when something changed:
//
//	ingest    merge parser output files
//	infer     run the inference passes
//	generate  map and name boundary functions (see Generator)
//	check     compile declarations and boundary functions
//	emit      write the C header of the boundary functions that compiled
//	clear     drop every item
//	dump      print the ledger
//
// Failures of single declarations are collected as diagnostics in the
// Report; only infrastructure failures stop a run.
package pipeline
