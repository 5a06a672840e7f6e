// Package commands holds the cobra commands of the bindgen CLI.
package commands

import (
	"github.com/spf13/cobra"

	"bindgen-core/internal/config"
	"bindgen-core/internal/errors"
	"bindgen-core/internal/kb"
	"bindgen-core/internal/logger"
)

var (
	configPath string
	cfg        *config.Config
)

// RootCmd is the bindgen command.
var RootCmd = &cobra.Command{
	Use:   "bindgen",
	Short: "Generate and check C boundary functions for C++ libraries",
	Long: `bindgen - binding generator core.

bindgen keeps a ledger of C++ declarations per crate and turns them into
uniquely named C-compatible boundary functions.

Available commands:
  ingest    - Merge parser output into the ledger
  infer     - Synthesize implicit declarations
  generate  - Map and name boundary functions
  check     - Compile declarations and boundary functions
  emit      - Write the boundary header
  process   - Run several operations in one go
  status    - Summarize the ledger
  inspect   - Show the items matching a name
  config    - Manage bindgen.toml

Examples:
  bindgen config init --crate qt_core
  bindgen ingest qt_core.discoveries.yaml
  bindgen process infer generate check emit -o include
  bindgen inspect QPoint`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// The file init writes need not exist yet.
		if cmd == configInitCmd {
			return logger.Initialize(false, "")
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}

		if err := logger.Initialize(loaded.Log.JSON, loaded.Log.Level); err != nil {
			return errors.Wrap(err, "initialize logger")
		}

		cfg = loaded

		if skipsValidation(cmd) {
			return nil
		}

		return cfg.Validate()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"config file (default ./"+config.FileName+")")

	RootCmd.AddCommand(ingestCmd, inferCmd, generateCmd, checkCmd, emitCmd, processCmd)
	RootCmd.AddCommand(statusCmd, inspectCmd, configCmd)
}

// skipsValidation reports whether cmd works without a valid config.
func skipsValidation(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == configCmd {
			return true
		}
	}

	return false
}

func workspace() (*kb.Workspace, error) {
	return kb.NewWorkspace(cfg.Workspace.Path)
}

func loadLedger() (*kb.Database, error) {
	ws, err := workspace()
	if err != nil {
		return nil, err
	}

	return ws.LoadOrCreate(cfg.Crate.Name)
}
