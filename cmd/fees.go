package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/muni-cli/internal/fees"
)

var feesPolicy string

var feesCmd = &cobra.Command{
	Use:   "fees <text-file>",
	Short: "Extract the underwriting fee from an official statement text file",
	Long:  "Reads a text file with pages separated by form feeds and runs the fee pattern cascade over it.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return eris.Wrap(err, "fees: read file")
		}
		pages := strings.Split(string(data), "\f")

		policy := feesPolicy
		if policy == "" {
			policy = cfg.Fees.Policy
		}

		ext := fees.NewExtractor(fees.Policy(policy))
		result, found := ext.Extract(pages)
		if !found {
			return eris.New("no fee amount found")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	feesCmd.Flags().StringVar(&feesPolicy, "policy", "", "candidate policy: historical or dedupe (default from config)")
	rootCmd.AddCommand(feesCmd)
}
