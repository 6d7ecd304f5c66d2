package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"heroblock/internal/block"
	"heroblock/internal/registry"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the variant catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, schema := range registry.All() {
			fmt.Printf("%-22s %-24s %d fields\n", schema.ID, schema.Label, len(schema.Fields))
		}

		return nil
	},
}

func registerVariantsCommand(root *cobra.Command) {
	root.AddCommand(variantsCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema <variant>",
	Short: "Export a variant's field metadata as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := registry.Get(block.VariantID(args[0]))
		if err != nil {
			return err
		}

		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)

		defer enc.Close()

		return enc.Encode(schema)
	},
}

func registerSchemaCommand(root *cobra.Command) {
	root.AddCommand(schemaCmd)
}
