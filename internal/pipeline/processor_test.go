package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bindgen-core/internal/check"
	"bindgen-core/internal/config"
	"bindgen-core/internal/cppdecl"
	"bindgen-core/internal/diagnostic"
	"bindgen-core/internal/kb"
)

type fixture struct {
	proc        *Processor
	ws          *kb.Workspace
	discoveries string
}

func newFixture(t *testing.T, failing ...string) *fixture {
	t.Helper()

	dir := t.TempDir()

	ws, err := kb.NewWorkspace(filepath.Join(dir, "workspace"))
	require.NoError(t, err)

	discoveries := filepath.Join(dir, "math.discoveries.yaml")
	require.NoError(t, kb.WriteDiscoveries(discoveries, []kb.Discovery{
		{Source: parsed("math.h"), Item: freeFunction("add", intType, "a", "b")},
		{Source: parsed("qpoint.h"), Item: cppdecl.NewType(cppdecl.TypeData{Name: "QPoint", Kind: cppdecl.TypeKindClass})},
		{Source: parsed("qpoint.h"), Item: constructor("QPoint", "x", "y")},
	}))

	cfg := config.Default()
	cfg.Crate.Name = "math"
	cfg.Crate.LibraryVersion = "1.0.0"
	cfg.Workspace.Path = ws.Dir

	proc := NewProcessor(cfg, ws)
	proc.Discoveries = []string{discoveries}
	proc.Checker = check.CheckerFunc(func(_ context.Context, s check.Snippet, _ kb.CheckerEnv) (*string, error) {
		for _, f := range failing {
			if strings.Contains(s.Body, f) {
				msg := "error: " + f
				return &msg, nil
			}
		}

		return nil, nil
	})

	return &fixture{proc: proc, ws: ws, discoveries: discoveries}
}

func TestProcess_FullPipeline(t *testing.T) {
	f := newFixture(t)

	report, err := f.proc.Process(context.Background(), []string{OpIngest, OpInfer, OpGenerate, OpCheck})
	require.NoError(t, err)

	assert.Equal(t, 3, report.Ingested)
	assert.Equal(t, 1, report.Inferred)
	assert.Equal(t, GenerateResult{Items: 3, Functions: 5}, report.Generate)
	assert.True(t, report.Diagnostics.IsValid())
	assert.True(t, report.Saved)

	// add, the class, the constructor and the implicit destructor are
	// checked as declarations, plus five boundary functions.
	assert.Equal(t, check.Summary{Checked: 9, Added: 9}, report.Check)

	db, err := f.ws.LoadOrCreate("math")
	require.NoError(t, err)
	assert.Equal(t, 4, db.Len())
	assert.Equal(t, []string{"math_G_add"}, boundaryNames(db, 0))
	assert.Equal(t, []string{"QPoint_destructor", "QPoint_delete"}, boundaryNames(db, 3))
	assert.Len(t, db.Emittable(nil), 3)

	env := db.Environments()
	require.Len(t, env, 1)
	assert.Equal(t, "1.0.0", *env[0].LibraryVersion)
}

func TestProcess_RerunIsStable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.proc.Process(ctx, []string{OpIngest, OpInfer, OpGenerate})
	require.NoError(t, err)

	report, err := f.proc.Process(ctx, []string{OpIngest, OpInfer, OpGenerate})
	require.NoError(t, err)
	assert.Zero(t, report.Ingested)
	assert.Zero(t, report.Inferred)
	assert.Equal(t, GenerateResult{}, report.Generate)
}

func TestProcess_Regression(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.proc.Process(ctx, []string{OpIngest, OpGenerate, OpCheck})
	require.NoError(t, err)

	f.proc.Checker = newFixture(t, "math_G_add").proc.Checker

	report, err := f.proc.Process(ctx, []string{OpCheck})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Check.Regressions)
	require.Len(t, report.Diagnostics.Warnings, 1)
	assert.Equal(t, diagnostic.CodeRegression, report.Diagnostics.Warnings[0].Code)

	db, err := f.ws.LoadOrCreate("math")
	require.NoError(t, err)
	assert.Len(t, db.Emittable(nil), 1)
}

func TestProcess_UnknownOperation(t *testing.T) {
	f := newFixture(t)

	_, err := f.proc.Process(context.Background(), []string{OpIngest, "generate_crate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate_crate")

	assert.NoFileExists(t, f.ws.Path("math"))
}

func TestProcess_MissingDependency(t *testing.T) {
	f := newFixture(t)
	f.proc.Config.Crate.Dependencies = []string{"qt_core"}

	_, err := f.proc.Process(context.Background(), []string{OpIngest})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "qt_core")
}

func TestProcess_DependencyDeclarationsAreNotGenerated(t *testing.T) {
	f := newFixture(t)

	core := kb.New("qt_core")
	core.Merge(parsed("math.h"), freeFunction("add", intType, "a", "b"))
	require.NoError(t, f.ws.Save(core))

	f.proc.Config.Crate.Dependencies = []string{"qt_core"}

	report, err := f.proc.Process(context.Background(), []string{OpIngest, OpGenerate})
	require.NoError(t, err)
	assert.Equal(t, GenerateResult{Items: 1, Functions: 2}, report.Generate)
}

func TestProcess_Emit(t *testing.T) {
	f := newFixture(t, "QPoint_new")
	f.proc.OutputDir = filepath.Join(t.TempDir(), "include")

	report, err := f.proc.Process(context.Background(), []string{OpIngest, OpInfer, OpGenerate, OpCheck, OpEmit})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(f.proc.OutputDir, "math_boundary.h"), report.Header)
	// add plus the two destructor variants; the constructor failed.
	assert.Equal(t, 3, report.Emitted)

	content, err := os.ReadFile(report.Header)
	require.NoError(t, err)
	assert.Contains(t, string(content), "int math_G_add(int a, int b);")
	assert.NotContains(t, string(content), "QPoint_new")
}

func TestProcess_ClearAndDump(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var out bytes.Buffer
	f.proc.Out = &out

	_, err := f.proc.Process(ctx, []string{OpIngest, OpDump})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "add")

	report, err := f.proc.Process(ctx, []string{OpClear})
	require.NoError(t, err)
	assert.True(t, report.Saved)

	db, err := f.ws.LoadOrCreate("math")
	require.NoError(t, err)
	assert.Zero(t, db.Len())
}

func TestProcess_IngestWithoutFiles(t *testing.T) {
	f := newFixture(t)
	f.proc.Discoveries = nil

	_, err := f.proc.Process(context.Background(), []string{OpIngest})
	require.Error(t, err)
}

func TestStatusOf(t *testing.T) {
	f := newFixture(t, "QPoint_new")

	_, err := f.proc.Process(context.Background(), []string{OpIngest, OpInfer, OpGenerate, OpCheck})
	require.NoError(t, err)

	db, err := f.ws.LoadOrCreate("math")
	require.NoError(t, err)

	s := StatusOf(db)
	assert.Equal(t, "math", s.Crate)
	assert.Equal(t, 4, s.Items)
	assert.Equal(t, []Count{{Label: "function", Count: 3}, {Label: "type", Count: 1}}, s.Kinds)
	assert.Equal(t, []Count{
		{Label: "discovered", Count: 0},
		{Label: "checked", Count: 1},
		{Label: "promoted", Count: 3},
		{Label: "wrapped", Count: 0},
	}, s.States)
	assert.Equal(t, 5, s.BoundaryFunctions)
	assert.Equal(t, 2, s.Emittable)
	require.Len(t, s.Environments, 1)
	assert.Equal(t, EnvStatus{Env: db.Environments()[0], Passed: 8, Failed: 1}, s.Environments[0])
}
