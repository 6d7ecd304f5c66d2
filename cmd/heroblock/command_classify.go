package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"heroblock/internal/block"
	"heroblock/internal/compat"
)

var classifyJSON bool

var classifyCmd = &cobra.Command{
	Use:   "classify <source> <target>",
	Short: "Assess how well one variant maps onto another",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		verdict, err := compat.Classify(block.VariantID(args[0]), block.VariantID(args[1]))
		if err != nil {
			return err
		}

		if classifyJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")

			return enc.Encode(verdict)
		}

		fmt.Printf("%s -> %s: compatibility %s, data-loss risk %s\n",
			verdict.Source, verdict.Target, verdict.Tier, verdict.Risk)

		for _, w := range verdict.Warnings {
			fmt.Println("  warning:", w)
		}

		for _, r := range verdict.Recommendations {
			fmt.Println("  recommendation:", r)
		}

		return nil
	},
}

func registerClassifyCommand(root *cobra.Command) {
	root.AddCommand(classifyCmd)

	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Emit the verdict as JSON")
}
