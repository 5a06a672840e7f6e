package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"bindgen-core/internal/diagnostic"
	"bindgen-core/internal/errors"
	"bindgen-core/internal/kb"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <name>",
	Short: "Show the ledger items named <name>",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		db, err := loadLedger()
		if err != nil {
			return err
		}

		name := args[0]

		found := db.Lookup(name)
		if len(found) == 0 {
			d := diagnostic.Diagnostic{
				Code:        diagnostic.CodeUnknownName,
				Message:     "no item named " + name,
				Suggestions: db.Suggest(name, 5),
			}

			if len(d.Suggestions) == 0 {
				return errors.New(d.String())
			}

			return errors.WithHintf(errors.New(d.Message), "did you mean %s?", strings.Join(d.Suggestions, ", "))
		}

		for _, i := range found {
			item, _ := db.Item(i)
			printItem(item)
		}

		return nil
	},
}

func printItem(item *kb.Item) {
	pterm.DefaultSection.Println(item.Data.String())
	pterm.Printfln("source: %s", item.Source)
	pterm.Printfln("state:  %s", item.State())

	for _, c := range item.Checks.Items {
		pterm.Printfln("check:  %s %s", c.Env.ShortText(), checkText(c.Error))
	}

	for _, b := range item.BoundaryItems {
		decl, err := b.Function.DeclarationCode()
		if err != nil {
			decl = b.Function.Name + " (" + err.Error() + ")"
		}

		pterm.Printfln("  #%d %s", b.ID, decl)

		for _, c := range b.Checks.Items {
			pterm.Printfln("      %s %s", c.Env.ShortText(), checkText(c.Error))
		}
	}
}

func checkText(msg *string) string {
	if msg == nil {
		return pterm.Green("ok")
	}

	first, _, _ := strings.Cut(*msg, "\n")

	return pterm.Red("failed: " + first)
}
