package commands

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"bindgen-core/internal/pipeline"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Summarize the crate ledger",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		db, err := loadLedger()
		if err != nil {
			return err
		}

		s := pipeline.StatusOf(db)

		pterm.DefaultSection.Printfln("Crate %s: %d items, %d boundary functions, %d emittable",
			s.Crate, s.Items, s.BoundaryFunctions, s.Emittable)

		counts := pterm.TableData{{"kind", "items"}}
		for _, c := range s.Kinds {
			counts = append(counts, []string{c.Label, strconv.Itoa(c.Count)})
		}

		for _, c := range s.States {
			counts = append(counts, []string{"state " + c.Label, strconv.Itoa(c.Count)})
		}

		if err := pterm.DefaultTable.WithHasHeader().WithData(counts).Render(); err != nil {
			return err
		}

		if len(s.Environments) == 0 {
			pterm.Info.Println("No checks recorded yet")
			return nil
		}

		envs := pterm.TableData{{"environment", "passed", "failed"}}
		for _, e := range s.Environments {
			envs = append(envs, []string{e.Env.ShortText(), strconv.Itoa(e.Passed), strconv.Itoa(e.Failed)})
		}

		return pterm.DefaultTable.WithHasHeader().WithData(envs).Render()
	},
}
