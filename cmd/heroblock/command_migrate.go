package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"heroblock/internal/block"
	"heroblock/internal/migrate"
)

var (
	migrateTarget   string
	migrateStrategy string
	migrateOut      string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <instance.json>",
	Short: "Migrate a block instance to another variant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := readInstance(args[0])
		if err != nil {
			return err
		}

		result := migrate.Migrate(inst, block.VariantID(migrateTarget), migrateStrategy)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		if err := enc.Encode(result); err != nil {
			return err
		}

		if !result.Success {
			os.Exit(1)
		}

		if migrateOut != "" {
			return writeInstance(migrateOut, *result.MigratedProps)
		}

		return nil
	},
}

func registerMigrateCommand(root *cobra.Command) {
	root.AddCommand(migrateCmd)

	migrateCmd.Flags().StringVarP(&migrateTarget, "target", "t", "", "Target variant id (required)")
	migrateCmd.Flags().StringVarP(&migrateStrategy, "strategy", "s", migrate.Balanced.Name, "Migration strategy")
	migrateCmd.Flags().StringVarP(&migrateOut, "out", "o", "", "Write the migrated instance to this file")

	_ = migrateCmd.MarkFlagRequired("target")
}

func readInstance(path string) (block.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return block.Instance{}, fmt.Errorf("read instance: %w", err)
	}

	var inst block.Instance
	if err := json.Unmarshal(data, &inst); err != nil {
		return block.Instance{}, fmt.Errorf("parse instance: %w", err)
	}

	return inst, nil
}

func writeInstance(path string, inst block.Instance) error {
	data, err := json.MarshalIndent(inst, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0o644)
}
