// Package main provides the CLI entrypoint for bindgen.
//
// bindgen keeps a per-crate ledger of C++ declarations and drives them
// through ingestion, inference, boundary generation and compile checks.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"bindgen-core/cmd/bindgen/commands"
	"bindgen-core/internal/errors"
	"bindgen-core/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := commands.RootCmd.ExecuteContext(ctx)

	stop()
	logger.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}

		os.Exit(1)
	}
}
