package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"heroblock/internal/duplicate"
)

var (
	dupResetMedia   bool
	dupResetButtons bool
	dupPrefix       string
	dupOut          string
)

var duplicateCmd = &cobra.Command{
	Use:   "duplicate <instance.json>",
	Short: "Duplicate a block instance within its variant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := readInstance(args[0])
		if err != nil {
			return err
		}

		opts := duplicate.DefaultOptions()
		opts.PreserveMedia = !dupResetMedia
		opts.PreserveButtons = !dupResetButtons
		opts.NamePrefix = dupPrefix

		dup, err := duplicate.Duplicate(inst, opts)
		if err != nil {
			return err
		}

		if dupOut != "" {
			return writeInstance(dupOut, dup)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(dup)
	},
}

func registerDuplicateCommand(root *cobra.Command) {
	root.AddCommand(duplicateCmd)

	duplicateCmd.Flags().BoolVar(&dupResetMedia, "reset-media", false, "Reset media descriptors to placeholders")
	duplicateCmd.Flags().BoolVar(&dupResetButtons, "reset-buttons", false, "Reset button URLs, keeping text")
	duplicateCmd.Flags().StringVar(&dupPrefix, "prefix", duplicate.DefaultNamePrefix, "Prefix for the duplicate's title")
	duplicateCmd.Flags().StringVarP(&dupOut, "out", "o", "", "Write the duplicate to this file")
}
