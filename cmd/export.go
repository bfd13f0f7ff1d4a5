package main

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/muni-cli/internal/model"
	"github.com/sells-group/muni-cli/internal/store"
)

var (
	exportPath   string
	exportStatus string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export processed deals to an XLSX workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		e, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		var deals []model.Deal
		offset := 0
		for {
			page, listErr := e.Store.ListDeals(ctx, store.DealFilter{
				Status: model.DealStatus(exportStatus),
				Limit:  200,
				Offset: offset,
			})
			if listErr != nil {
				return eris.Wrap(listErr, "export: list deals")
			}
			deals = append(deals, page...)
			if len(page) < 200 {
				break
			}
			offset += 200
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Deals")
		if err != nil {
			return eris.Wrap(err, "export: add sheet")
		}

		header := sheet.AddRow()
		for _, h := range []string{
			"Source URL", "Obligor", "Lead Managers", "Co-Managers",
			"Municipal Advisors", "Counsels", "Fee", "Previous Fee",
			"Needs Review", "Status",
		} {
			header.AddCell().Value = h
		}

		var feeTotal float64
		for _, d := range deals {
			row := sheet.AddRow()
			row.AddCell().Value = d.SourceURL
			row.AddCell().Value = d.Obligor

			if d.Standardized != nil {
				row.AddCell().Value = strings.Join(d.Standardized.LeadManagers, "; ")
				row.AddCell().Value = strings.Join(d.Standardized.CoManagers, "; ")
				row.AddCell().Value = strings.Join(d.Standardized.MunicipalAdvisors, "; ")
				row.AddCell().Value = strings.Join(d.Standardized.Counsels, "; ")
			} else {
				row.AddCell().Value = strings.Join(d.Raw.LeadManagers, "; ")
				row.AddCell().Value = strings.Join(d.Raw.CoManagers, "; ")
				row.AddCell().Value = strings.Join(d.Raw.MunicipalAdvisors, "; ")
				row.AddCell().Value = strings.Join(d.Raw.Counsels, "; ")
			}

			if d.Fee != nil {
				row.AddCell().SetFloatWithFormat(d.Fee.Total, "#,##0.00")
				feeTotal += d.Fee.Total
			} else {
				row.AddCell()
			}
			if d.PreviousFee != nil {
				row.AddCell().SetFloatWithFormat(*d.PreviousFee, "#,##0.00")
			} else {
				row.AddCell()
			}
			if d.Fee != nil && d.Fee.Breakdown.NeedsReview {
				row.AddCell().Value = "yes"
			} else {
				row.AddCell()
			}
			row.AddCell().Value = string(d.Status)
		}

		if err := file.Save(exportPath); err != nil {
			return eris.Wrap(err, "export: save workbook")
		}

		p := message.NewPrinter(language.AmericanEnglish)
		zap.L().Info("export complete",
			zap.Int("deals", len(deals)),
			zap.String("fee_total", p.Sprintf("$%.2f", feeTotal)),
			zap.String("path", exportPath),
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportPath, "out", "deals.xlsx", "output workbook path")
	exportCmd.Flags().StringVar(&exportStatus, "status", "", "only export deals with this status")
	rootCmd.AddCommand(exportCmd)
}
