package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"bindgen-core/internal/check"
	"bindgen-core/internal/config"
	"bindgen-core/internal/diagnostic"
	"bindgen-core/internal/errors"
	"bindgen-core/internal/ffi"
	"bindgen-core/internal/gen"
	"bindgen-core/internal/infer"
	"bindgen-core/internal/kb"
	"bindgen-core/internal/logger"
)

// Operation names accepted by Process.
const (
	OpIngest   = "ingest"
	OpInfer    = "infer"
	OpGenerate = "generate"
	OpCheck    = "check"
	OpEmit     = "emit"
	OpClear    = "clear"
	OpDump     = "dump"
)

// Operations returns every operation name in pipeline order.
func Operations() []string {
	return []string{OpIngest, OpInfer, OpGenerate, OpCheck, OpEmit, OpClear, OpDump}
}

// Report summarizes one Process call.
type Report struct {
	Ingested    int
	Inferred    int
	Generate    GenerateResult
	Check       check.Summary
	Emitted     int
	Diagnostics diagnostic.Diagnostics
	// Header is the path of the boundary header written by emit.
	Header string
	// Saved is set when the ledger was written back.
	Saved bool
}

// Processor runs operations on the ledger of the configured crate.
type Processor struct {
	Config    *config.Config
	Workspace *kb.Workspace
	// Checker runs compile checks; nil means a CommandChecker built from
	// Config.
	Checker check.Checker
	// Env labels the checks of this run.
	Env kb.CheckerEnv
	// Discoveries are the parser output files read by the ingest
	// operation.
	Discoveries []string
	// OutputDir receives the boundary header; empty means the workspace
	// directory.
	OutputDir string
	// Out receives the dump operation's output; nil means stdout.
	Out    io.Writer
	Logger *zap.SugaredLogger
}

// NewProcessor returns a processor for cfg checking in the host
// environment.
func NewProcessor(cfg *config.Config, ws *kb.Workspace) *Processor {
	return &Processor{
		Config:    cfg,
		Workspace: ws,
		Env:       kb.NewCheckerEnv(kb.CurrentTarget(), cfg.Crate.LibraryVersion),
	}
}

// Process loads the crate ledger and its dependencies, runs ops in order
// and saves the ledger if any operation changed it. Unknown operations
// are rejected before anything runs. A failing operation stops the run;
// what earlier operations changed is still saved.
func (p *Processor) Process(ctx context.Context, ops []string) (*Report, error) {
	log := logger.Or(p.Logger)

	for _, op := range ops {
		if !slices.Contains(Operations(), op) {
			return nil, errors.WithHintf(errors.Newf("unknown operation %q", op),
				"valid operations: %s", strings.Join(Operations(), ", "))
		}
	}

	crate := p.Config.Crate.Name
	log.Infow("processing crate", "crate", crate, "operations", ops)

	db, err := p.Workspace.LoadOrCreate(crate)
	if err != nil {
		return nil, errors.Wrap(err, "load current crate")
	}

	deps := make([]*kb.Database, 0, len(p.Config.Crate.Dependencies))

	for _, name := range p.Config.Crate.Dependencies {
		dep, err := p.Workspace.LoadDependency(name)
		if err != nil {
			return nil, err
		}

		deps = append(deps, dep)
	}

	report := &Report{}
	dirty := false

	var runErr error

	for _, op := range ops {
		if runErr = ctx.Err(); runErr != nil {
			break
		}

		changed, err := p.run(ctx, op, db, deps, report)
		dirty = dirty || changed

		if err != nil {
			runErr = errors.Wrapf(err, "operation %s", op)
			break
		}
	}

	if dirty {
		log.Infow("saving ledger", "crate", crate, "items", db.Len())

		if err := p.Workspace.Save(db); err != nil {
			return report, errors.CombineErrors(runErr, err)
		}

		report.Saved = true
	}

	return report, runErr
}

func (p *Processor) run(ctx context.Context, op string, db *kb.Database, deps []*kb.Database, report *Report) (bool, error) {
	log := logger.Or(p.Logger)

	switch op {
	case OpIngest:
		if len(p.Discoveries) == 0 {
			return false, errors.WithHint(errors.New("no discovery files"), "pass the parser output files to ingest")
		}

		for _, path := range p.Discoveries {
			ds, err := kb.LoadDiscoveries(path)
			if err != nil {
				return false, err
			}

			n := db.Ingest(ds)
			report.Ingested += n

			log.Infow("ingested discoveries", "file", path, "entries", len(ds), "new", n)
		}

		return true, nil
	case OpInfer:
		for _, pass := range infer.All() {
			n := pass.Run(db)
			report.Inferred += n

			log.Infow("inference pass", "pass", pass.Name, "new", n)
		}

		return true, nil
	case OpGenerate:
		places, err := p.Config.AllocationPlaces()
		if err != nil {
			return false, err
		}

		g := &Generator{
			Mapper:       ffi.NewMapper(p.Config.FFI.FlagsClass),
			Places:       places,
			Dependencies: deps,
		}

		res, diags := g.Generate(db)
		report.Generate = res
		report.Diagnostics.Merge(diags)

		for _, d := range diags.Errors {
			log.Warnw("declaration skipped", "item", d.Item, "code", d.Code, "error", d.Message)
		}

		log.Infow("generated boundary functions", "items", res.Items, "functions", res.Functions, "failed", res.Failed)

		return true, nil
	case OpCheck:
		checker, err := p.checker()
		if err != nil {
			return false, err
		}

		r := &check.Runner{Checker: checker, Workers: p.Config.Checker.Workers, Logger: p.Logger}

		summary, err := r.Run(ctx, db, []kb.CheckerEnv{p.Env})
		report.Check = summary

		if summary.Regressions > 0 {
			report.Diagnostics.AddWarning(diagnostic.CodeRegression,
				fmt.Sprintf("%d checks no longer compile in %s", summary.Regressions, p.Env.ShortText()), "", "")
		}

		// Partial results are saved even when the run was aborted.
		return summary.Checked > 0, err
	case OpEmit:
		file, err := gen.NewGenerator(gen.DefaultGeneratorConfig()).Generate(db)
		if err != nil {
			return false, err
		}

		dir := p.OutputDir
		if dir == "" {
			dir = p.Workspace.Dir
		}

		if err := gen.WriteFiles([]gen.GeneratedFile{*file}, dir); err != nil {
			return false, err
		}

		report.Header = filepath.Join(dir, file.Filename)
		report.Emitted = file.Functions

		log.Infow("wrote boundary header", "path", report.Header, "functions", file.Functions)

		return false, nil
	case OpClear:
		db.Clear()
		log.Infow("cleared ledger", "crate", db.CrateName())

		return true, nil
	case OpDump:
		out := p.Out
		if out == nil {
			out = os.Stdout
		}

		_, err := io.WriteString(out, db.Dump())

		return false, errors.Wrap(err, "write dump")
	default:
		return false, errors.AssertionFailedf("unhandled operation %q", op)
	}
}

func (p *Processor) checker() (check.Checker, error) {
	if p.Checker != nil {
		return p.Checker, nil
	}

	return check.NewCommandChecker(p.Config)
}
