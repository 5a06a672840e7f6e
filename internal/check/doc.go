// Package check compiles ledger items against the native library.
//
// Every checkable declaration and every boundary function is rendered into
// a small translation unit (a Snippet) and handed to a Checker, normally a
// CommandChecker running the configured compiler. A Runner fans the
// snippets out over a bounded worker pool and feeds the outcomes back into
// the ledger through a single collector, so the ledger itself needs no
// locking:
//
//	runner := &check.Runner{Checker: checker, Workers: cfg.Checker.Workers}
//	summary, err := runner.Run(ctx, db, []kb.CheckerEnv{env})
//
// A compile error is data: it is recorded for the environment and shows up
// as a regression or fix on later runs. Only failures to run the compiler
// at all abort a run.
package check
