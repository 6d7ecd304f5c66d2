// Package main provides the CLI entrypoint for the hero-block engine.
//
// heroblock is the variant-migration and duplication engine of a
// content-block authoring tool:
//   - Lists the variant catalog and exports per-variant field metadata
//   - Classifies the compatibility of a variant pair
//   - Migrates a block instance between variants under a strategy
//   - Duplicates an instance with media/button reset options
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"heroblock/internal/registry"
)

var rootCmd = &cobra.Command{
	Use:   "heroblock",
	Short: "Hero-block variant migration and duplication engine",
	Long:  "heroblock duplicates and migrates hero content blocks across ten structurally distinct variants, with explicit accounting of what is kept, transformed, or dropped",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return registry.SelfCheck()
	},
}

func main() {
	registerVariantsCommand(rootCmd)
	registerSchemaCommand(rootCmd)
	registerClassifyCommand(rootCmd)
	registerMigrateCommand(rootCmd)
	registerDuplicateCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
