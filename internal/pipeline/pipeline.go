// Package pipeline orchestrates per-deal processing: override application,
// party name standardization, and fee extraction, with results written back
// to the store.
package pipeline

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/muni-cli/internal/config"
	"github.com/sells-group/muni-cli/internal/entity"
	"github.com/sells-group/muni-cli/internal/fees"
	"github.com/sells-group/muni-cli/internal/model"
	"github.com/sells-group/muni-cli/internal/override"
	"github.com/sells-group/muni-cli/internal/standardize"
	"github.com/sells-group/muni-cli/internal/store"
)

// Pipeline processes scraped deals end to end.
type Pipeline struct {
	cfg          *config.Config
	store        store.Store
	standardizer *standardize.Standardizer
	extractor    *fees.Extractor
	overrides    *override.Table
}

// New creates a Pipeline with all dependencies. A nil override table means
// no per-source corrections are applied.
func New(cfg *config.Config, st store.Store, reg *entity.Registry, ovr *override.Table) *Pipeline {
	if ovr == nil {
		ovr = override.New(nil)
	}
	return &Pipeline{
		cfg:          cfg,
		store:        st,
		standardizer: standardize.New(reg),
		extractor:    fees.NewExtractor(fees.Policy(cfg.Fees.Policy)),
		overrides:    ovr,
	}
}

// feeEligible reports whether the deal's document type carries a fee worth
// extracting. Preliminary statements and notices of sale do not.
func feeEligible(osType string) bool {
	return osType == model.OSTypeOfficialStatement || osType == model.OSTypeOfferingMemorandum
}

// ProcessDeal runs one deal through override application, standardization,
// and fee extraction, and persists the outcome. The returned result mirrors
// what was written to the store.
func (p *Pipeline) ProcessDeal(ctx context.Context, deal *model.Deal) (*model.ProcessResult, error) {
	log := zap.L().With(zap.String("deal", deal.ID), zap.String("source", deal.SourceURL))

	raw, changes := p.overrides.Apply(deal.SourceURL, deal.Raw)
	if len(changes) > 0 {
		log.Info("pipeline: overrides applied", zap.Int("changes", len(changes)))
	}

	result := &model.ProcessResult{Overrides: changes}

	std, ok := p.standardizer.Standardize(raw)
	if !ok {
		// Failure only marks the status; results from an earlier
		// successful pass stay in place.
		result.Status = model.DealStatusFailed
		result.Standardized = deal.Standardized
		result.Fee = deal.Fee
		result.PreviousFee = deal.PreviousFee
		result.FeeScraped = deal.FeeScraped
		if err := p.store.UpdateDealResult(ctx, deal.ID, result); err != nil {
			return nil, err
		}
		return result, eris.Errorf("pipeline: deal %s has no lead managers", deal.SourceURL)
	}
	result.Standardized = std
	result.Status = model.DealStatusStandardized

	for _, w := range std.Warnings {
		log.Warn("pipeline: unresolved party",
			zap.String("slot", w.Slot),
			zap.String("value", w.Value),
		)
	}

	if feeEligible(raw.OSType) && len(deal.PageText) > 0 {
		if deal.Fee != nil {
			prev := deal.Fee.Total
			result.PreviousFee = &prev
		} else {
			result.PreviousFee = deal.PreviousFee
		}

		fee, found := p.extractor.Extract(deal.PageText)
		result.FeeScraped = found
		result.Status = model.DealStatusFeeExtracted
		if found {
			result.Fee = fee
			if !fee.Breakdown.AreAmountsIdentical {
				log.Warn("pipeline: multiple differing fee amounts, total needs review",
					zap.Float64s("amounts", fee.Breakdown.Amounts),
					zap.Float64("total", fee.Total),
				)
			}
			if err := p.store.RecordFeeCandidates(ctx, deal.ID, p.extractor.Candidates(deal.PageText)); err != nil {
				log.Warn("pipeline: failed to record fee candidates", zap.Error(err))
			}
		} else {
			log.Info("pipeline: no fee amount found in document")
		}
	} else {
		// Carry forward any previously extracted fee untouched.
		result.Fee = deal.Fee
		result.PreviousFee = deal.PreviousFee
		result.FeeScraped = deal.FeeScraped
	}

	if err := p.store.UpdateDealResult(ctx, deal.ID, result); err != nil {
		return nil, eris.Wrapf(err, "pipeline: persist result for %s", deal.ID)
	}
	return result, nil
}
