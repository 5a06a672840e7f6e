package commands

import (
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"bindgen-core/internal/config"
	"bindgen-core/internal/errors"
	"bindgen-core/internal/kb"
)

var (
	initCrate     string
	initWorkspace string
	initForce     bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage " + config.FileName,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default " + config.FileName + " and create the workspace",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if initCrate == "" {
			return errors.New("--crate is required")
		}

		dir, err := filepath.Abs(initWorkspace)
		if err != nil {
			return errors.Wrap(err, "workspace path")
		}

		if _, err := kb.NewWorkspace(dir); err != nil {
			return err
		}

		c := config.Default()
		c.Crate.Name = initCrate
		c.Workspace.Path = dir

		if err := c.Validate(); err != nil {
			return err
		}

		path := configPath
		if path == "" {
			path = config.FileName
		}

		if err := config.WriteFile(c, path, initForce); err != nil {
			return err
		}

		pterm.Success.Printfln("Wrote %s for crate %s (workspace %s)", path, initCrate, dir)

		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return config.Encode(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	configInitCmd.Flags().StringVar(&initCrate, "crate", "", "crate name")
	configInitCmd.Flags().StringVar(&initWorkspace, "workspace", "bindgen-workspace", "ledger directory")
	configInitCmd.Flags().BoolVarP(&initForce, "force", "f", false, "replace an existing config file")

	configCmd.AddCommand(configInitCmd, configShowCmd)
}
