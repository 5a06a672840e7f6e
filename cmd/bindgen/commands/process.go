package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"bindgen-core/internal/pipeline"
)

var (
	discoveryFiles []string
	outputDir      string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file>...",
	Short: "Merge parser output files into the ledger",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperations(cmd, []string{pipeline.OpIngest}, args)
	},
}

var inferCmd = &cobra.Command{
	Use:   "infer",
	Short: "Synthesize implicit destructors, template instances, namespaces and signal argument sets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runOperations(cmd, []string{pipeline.OpInfer}, nil)
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Map and name boundary functions for every new function",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runOperations(cmd, []string{pipeline.OpGenerate}, nil)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Compile declarations and boundary functions in the host environment",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runOperations(cmd, []string{pipeline.OpCheck}, nil)
	},
}

var emitCmd = &cobra.Command{
	Use:   "emit",
	Short: "Write the C header declaring every boundary function that compiled",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runOperations(cmd, []string{pipeline.OpEmit}, nil)
	},
}

var processCmd = &cobra.Command{
	Use:   "process <operation>...",
	Short: "Run operations in order: " + strings.Join(pipeline.Operations(), ", "),
	Long: `Run several operations on the crate ledger in one go. The ledger is
loaded once and saved once at the end.

Examples:
  bindgen process ingest infer generate check -d qt_core.discoveries.yaml
  bindgen process clear`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperations(cmd, args, discoveryFiles)
	},
}

func init() {
	processCmd.Flags().StringSliceVarP(&discoveryFiles, "discoveries", "d", nil,
		"parser output files for the ingest operation")

	for _, c := range []*cobra.Command{emitCmd, processCmd} {
		c.Flags().StringVarP(&outputDir, "output", "o", "", "directory of the boundary header (default the workspace)")
	}
}

func runOperations(cmd *cobra.Command, ops, discoveries []string) error {
	ws, err := workspace()
	if err != nil {
		return err
	}

	proc := pipeline.NewProcessor(cfg, ws)
	proc.Discoveries = discoveries
	proc.Out = cmd.OutOrStdout()
	proc.OutputDir = outputDir

	report, err := proc.Process(cmd.Context(), ops)
	if report != nil {
		printReport(report)
	}

	return err
}

func printReport(r *pipeline.Report) {
	if r.Ingested > 0 {
		pterm.Info.Printfln("Ingested %d new declarations", r.Ingested)
	}

	if r.Inferred > 0 {
		pterm.Info.Printfln("Inferred %d declarations", r.Inferred)
	}

	if g := r.Generate; g.Items > 0 || g.Failed > 0 {
		pterm.Info.Printfln("Generated %d boundary functions for %d declarations (%d failed)",
			g.Functions, g.Items, g.Failed)
	}

	if c := r.Check; c.Checked > 0 {
		pterm.Info.Printfln("Checked %d: %d new, %d changed, %d unchanged, %d regressions, %d fixes",
			c.Checked, c.Added, c.Changed, c.Unchanged, c.Regressions, c.Fixes)
	}

	if r.Header != "" {
		pterm.Info.Printfln("Wrote %d boundary functions to %s", r.Emitted, r.Header)
	}

	for _, cc := range r.Diagnostics.CountByCode() {
		pterm.Warning.Printfln("%d x %s", cc.Count, cc.Code)
	}

	for _, d := range r.Diagnostics.Warnings {
		pterm.Warning.Println(d.String())
	}

	if r.Saved {
		pterm.Success.Println("Ledger saved")
	}
}
