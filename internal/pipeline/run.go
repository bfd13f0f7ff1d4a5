package pipeline

import (
	"context"
	"sync"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/muni-cli/internal/model"
	"github.com/sells-group/muni-cli/internal/store"
)

// listPageSize is how many deals each store round-trip fetches during a
// batch run.
const listPageSize = 200

// Failure records one deal that could not be processed.
type Failure struct {
	SourceURL string `json:"source_url"`
	Reason    string `json:"reason"`
}

// Summary is the outcome of one batch run.
type Summary struct {
	Total       int       `json:"total"`
	Succeeded   int       `json:"succeeded"`
	Skipped     int       `json:"skipped"`
	MissingText int       `json:"missing_text"`
	FeesFound   int       `json:"fees_found"`
	Failed      int       `json:"failed"`
	Failures    []Failure `json:"failures,omitempty"`
}

// Run processes every stored deal, bounded by the configured concurrency.
// Deals that already carry results are skipped unless reprocessing is
// enabled. Individual deal failures are recorded in the summary and do not
// abort the batch.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	deals, err := p.collectDeals(ctx)
	if err != nil {
		return nil, err
	}

	concurrency := p.cfg.Process.MaxConcurrentDeals
	if concurrency <= 0 {
		concurrency = 1
	}

	zap.L().Info("pipeline: starting batch",
		zap.Int("deals", len(deals)),
		zap.Int("concurrency", concurrency),
		zap.Bool("reprocess", p.cfg.Process.Reprocess),
	)

	summary := &Summary{Total: len(deals)}
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, deal := range deals {
		g.Go(func() error {
			if !p.cfg.Process.Reprocess && deal.Status != model.DealStatusScraped {
				mu.Lock()
				summary.Skipped++
				mu.Unlock()
				return nil
			}

			result, procErr := p.ProcessDeal(gCtx, &deal)
			mu.Lock()
			defer mu.Unlock()
			if procErr != nil {
				summary.Failed++
				summary.Failures = append(summary.Failures, Failure{
					SourceURL: deal.SourceURL,
					Reason:    procErr.Error(),
				})
				zap.L().Error("pipeline: deal failed",
					zap.String("source", deal.SourceURL),
					zap.Error(procErr),
				)
				return nil // don't abort batch on individual failure
			}

			summary.Succeeded++
			if result.Status == model.DealStatusFeeExtracted {
				if result.FeeScraped {
					summary.FeesFound++
				}
			} else if feeEligible(result.Standardized.Raw.OSType) && len(deal.PageText) == 0 {
				summary.MissingText++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return summary, eris.Wrap(err, "pipeline: batch run")
	}

	zap.L().Info("pipeline: batch complete",
		zap.Int("total", summary.Total),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("skipped", summary.Skipped),
		zap.Int("fees_found", summary.FeesFound),
		zap.Int("missing_text", summary.MissingText),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

// collectDeals pages through the store until the listing is exhausted.
func (p *Pipeline) collectDeals(ctx context.Context) ([]model.Deal, error) {
	var all []model.Deal
	offset := 0
	for {
		page, err := p.store.ListDeals(ctx, store.DealFilter{Limit: listPageSize, Offset: offset})
		if err != nil {
			return nil, eris.Wrap(err, "pipeline: list deals")
		}
		all = append(all, page...)
		if len(page) < listPageSize {
			return all, nil
		}
		offset += listPageSize
	}
}
