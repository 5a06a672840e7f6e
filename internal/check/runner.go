package check

import (
	"context"
	"runtime"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"bindgen-core/internal/errors"
	"bindgen-core/internal/kb"
	"bindgen-core/internal/logger"
)

// Summary counts the outcomes of one run.
type Summary struct {
	Checked     int
	Added       int
	Changed     int
	Unchanged   int
	Regressions int
	Fixes       int
	// Skipped counts items whose snippet could not be rendered.
	Skipped int
}

// Runner checks ledger items in parallel. Checks run concurrently; only
// the collector goroutine writes to the ledger.
type Runner struct {
	Checker Checker
	Workers int
	Logger  *zap.SugaredLogger
}

type job struct {
	ref     kb.CheckRef
	env     kb.CheckerEnv
	snippet Snippet
}

type outcome struct {
	job
	message *string
}

// Run checks every checkable declaration and boundary item in each of
// envs and records the results in db.
func (r *Runner) Run(ctx context.Context, db *kb.Database, envs []kb.CheckerEnv) (Summary, error) {
	log := logger.Or(r.Logger)

	if r.Checker == nil {
		return Summary{}, errors.AssertionFailedf("runner without checker")
	}

	jobs, skipped := collectJobs(db, envs, log)
	summary := Summary{Skipped: skipped}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	log.Infow("running checks", "jobs", len(jobs), "environments", len(envs), "workers", workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	results := make(chan outcome, workers)
	collected := make(chan error, 1)

	go func() {
		var firstErr error

		for o := range results {
			if firstErr != nil {
				continue
			}

			res, err := db.RecordCheck(o.ref, o.env, o.message)
			if err != nil {
				firstErr = err
				continue
			}

			summary.add(res)

			if res.IsRegression() {
				log.Warnw("check regressed", "item", o.ref.Item, "env", o.env.ShortText(), "error", *o.message)
			}
		}

		collected <- firstErr
	}()

	for _, j := range jobs {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			msg, err := r.Checker.Check(gctx, j.snippet, j.env)
			if err != nil {
				return errors.Wrapf(err, "check item %d", j.ref.Item)
			}

			select {
			case results <- outcome{job: j, message: msg}:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}

	runErr := g.Wait()

	close(results)

	if err := <-collected; err != nil {
		return summary, err
	}

	if runErr != nil {
		return summary, runErr
	}

	if err := ctx.Err(); err != nil {
		return summary, err
	}

	log.Infow("checks done",
		"checked", summary.Checked,
		"added", summary.Added,
		"changed", summary.Changed,
		"regressions", summary.Regressions,
		"fixes", summary.Fixes)

	return summary, nil
}

func (s *Summary) add(res kb.CheckResult) {
	s.Checked++

	switch res.Kind {
	case kb.CheckAdded:
		s.Added++
	case kb.CheckChanged:
		s.Changed++
	case kb.CheckUnchanged:
		s.Unchanged++
	}

	if res.IsRegression() {
		s.Regressions++
	}

	if res.IsFix() {
		s.Fixes++
	}
}

func collectJobs(db *kb.Database, envs []kb.CheckerEnv, log *zap.SugaredLogger) ([]job, int) {
	var (
		jobs    []job
		skipped int
	)

	all := crateHeaders(db)

	for i, item := range db.Items() {
		headers := all
		if item.Source.IncludeFile != "" {
			headers = []string{item.Source.IncludeFile}
		}

		s, err := DeclarationSnippet(item.Data, headers)

		switch {
		case errors.Is(err, ErrNotCheckable):
		case err != nil:
			skipped++

			log.Debugw("declaration not checked", "item", item.Data.Name(), "error", err)
		default:
			for _, env := range envs {
				jobs = append(jobs, job{ref: kb.DeclarationRef(i), env: env, snippet: s})
			}
		}

		for _, b := range item.BoundaryItems {
			s, err := BoundarySnippet(b.Function, headers)
			if err != nil {
				skipped++

				log.Debugw("boundary function not checked", "name", b.Function.Name, "error", err)

				continue
			}

			for _, env := range envs {
				jobs = append(jobs, job{ref: kb.BoundaryRef(i, b.ID), env: env, snippet: s})
			}
		}
	}

	return jobs, skipped
}

// crateHeaders returns the include files of every parsed item, sorted.
// Synthesized items are checked against all of them.
func crateHeaders(db *kb.Database) []string {
	var headers []string

	for _, item := range db.Items() {
		if h := item.Source.IncludeFile; h != "" && !slices.Contains(headers, h) {
			headers = append(headers, h)
		}
	}

	slices.Sort(headers)

	return headers
}
