package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/muni-cli/internal/standardize"
)

var standardizeSource string

var standardizeCmd = &cobra.Command{
	Use:   "standardize",
	Short: "Standardize the party names of one stored deal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		e, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		deal, err := e.Store.GetDealBySource(ctx, standardizeSource)
		if err != nil {
			return err
		}
		if deal == nil {
			return eris.Errorf("no deal stored for %s", standardizeSource)
		}

		raw, changes := e.Overrides.Apply(deal.SourceURL, deal.Raw)
		if len(changes) > 0 {
			zap.L().Info("overrides applied", zap.Int("changes", len(changes)))
		}

		std, ok := standardize.New(e.Registry).Standardize(raw)
		if !ok {
			return eris.Errorf("deal %s has no lead managers", deal.SourceURL)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(std)
	},
}

func init() {
	standardizeCmd.Flags().StringVar(&standardizeSource, "source", "", "deal source URL (required)")
	_ = standardizeCmd.MarkFlagRequired("source")
	rootCmd.AddCommand(standardizeCmd)
}
