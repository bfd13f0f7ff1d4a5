package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/muni-cli/internal/model"
)

var importJSONPath string

// importRecord is one scraped deal as the scraper emits it: party slots and
// document metadata flat at the top level.
type importRecord struct {
	SourceURL string `json:"source_url"`
	Obligor   string `json:"obligor"`
	model.RawFields
	PageText []string `json:"page_text"`
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import scraped deals from a JSON file into the store",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		data, err := os.ReadFile(importJSONPath)
		if err != nil {
			return eris.Wrap(err, "import: read file")
		}
		var records []importRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return eris.Wrap(err, "import: parse json")
		}

		deals := make([]model.Deal, 0, len(records))
		for _, r := range records {
			if r.SourceURL == "" {
				return eris.New("import: record missing source_url")
			}
			deals = append(deals, model.Deal{
				SourceURL: r.SourceURL,
				Obligor:   r.Obligor,
				Raw:       r.RawFields,
				PageText:  r.PageText,
			})
		}

		e, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		n, err := e.Store.ImportDeals(ctx, deals)
		if err != nil {
			return eris.Wrap(err, "import deals")
		}

		zap.L().Info("import complete",
			zap.Int("records", len(deals)),
			zap.Int64("rows", n),
			zap.String("json", importJSONPath),
		)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importJSONPath, "json", "", "path to scraped deals JSON file (required)")
	_ = importCmd.MarkFlagRequired("json")
	rootCmd.AddCommand(importCmd)
}
