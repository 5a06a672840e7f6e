// Package kb is the per-crate knowledge base: an ordered ledger of every
// discovered declaration with its provenance, its generated boundary
// functions, and the outcome of compile checks per environment.
//
// Database.Merge is the only way declarations enter the ledger. It keeps
// at most one item per declaration identity and lets parser provenance
// replace synthesized provenance, never the reverse. Items are never
// removed during a run.
//
// A Database is not safe for concurrent mutation. The checking phase
// funnels results through a single goroutine that calls RecordCheck.
//
// Ledgers persist as YAML, one file per crate, and reload with identical
// merge behavior.
package kb
