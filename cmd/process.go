package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	processReprocess   bool
	processConcurrency int
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Run the full pipeline over every stored deal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if processReprocess {
			cfg.Process.Reprocess = true
		}
		if processConcurrency > 0 {
			cfg.Process.MaxConcurrentDeals = processConcurrency
		}

		e, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		summary, err := e.Pipeline.Run(ctx)
		if err != nil {
			return eris.Wrap(err, "process")
		}

		if summary.Failed > 0 {
			zap.L().Warn("some deals failed", zap.Int("failed", summary.Failed))
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	},
}

func init() {
	processCmd.Flags().BoolVar(&processReprocess, "reprocess", false, "reprocess deals that already carry results")
	processCmd.Flags().IntVar(&processConcurrency, "concurrency", 0, "max concurrent deals (default from config)")
	rootCmd.AddCommand(processCmd)
}
