package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/muni-cli/internal/model"
	"github.com/sells-group/muni-cli/internal/resilience"
)

// DealFilter specifies criteria for listing deals.
type DealFilter struct {
	Status    model.DealStatus `json:"status,omitempty"`
	SourceURL string           `json:"source_url,omitempty"`
	Limit     int              `json:"limit,omitempty"`
	Offset    int              `json:"offset,omitempty"`
}

// Store defines the persistence interface for the deal pipeline.
type Store interface {
	// Deals
	CreateDeal(ctx context.Context, sourceURL, obligor string, raw model.RawFields, pageText []string) (*model.Deal, error)
	ImportDeals(ctx context.Context, deals []model.Deal) (int64, error)
	GetDeal(ctx context.Context, dealID string) (*model.Deal, error)
	GetDealBySource(ctx context.Context, sourceURL string) (*model.Deal, error)
	ListDeals(ctx context.Context, filter DealFilter) ([]model.Deal, error)
	UpdateDealStatus(ctx context.Context, dealID string, status model.DealStatus) error
	UpdateDealResult(ctx context.Context, dealID string, result *model.ProcessResult) error

	// Fee candidate audit log
	RecordFeeCandidates(ctx context.Context, dealID string, candidates []model.FeeCandidate) error
	ListFeeCandidates(ctx context.Context, dealID string) ([]model.FeeCandidate, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// Open constructs a Store for the configured driver. SQLite is the default
// backend; Postgres is selected with driver "postgres" and a connection
// string.
func Open(ctx context.Context, driver, path, databaseURL string) (Store, error) {
	switch driver {
	case "", "sqlite":
		st, err := NewSQLite(path)
		if err != nil {
			return nil, err
		}
		return st, nil
	case "postgres":
		// Connection setup rides out transient failures, e.g. the database
		// still coming up.
		cfg := resilience.DefaultRetryConfig()
		cfg.OnRetry = resilience.RetryLogger("postgres connect")
		return resilience.DoVal(ctx, cfg, func(ctx context.Context) (Store, error) {
			st, err := NewPostgres(ctx, databaseURL, nil)
			if err != nil {
				return nil, err
			}
			return st, nil
		})
	default:
		return nil, eris.Errorf("store: unknown driver %q", driver)
	}
}
