package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/muni-cli/internal/db"
	"github.com/sells-group/muni-cli/internal/model"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// preparedStatements lists queries to prepare on each new connection for
// faster execution of the most frequently used store operations.
var preparedStatements = map[string]string{
	"insert_deal":        `INSERT INTO deals (id, source_url, obligor, raw, page_text, status, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
	"update_deal_status": `UPDATE deals SET status = $1, updated_at = $2 WHERE id = $3`,
	"update_deal_result": `UPDATE deals SET standardized = $1, fee = $2, previous_fee = $3, fee_scraped = $4, overrides = $5, status = $6, updated_at = $7 WHERE id = $8`,
	"get_deal":           `SELECT id, source_url, obligor, raw, page_text, standardized, fee, previous_fee, fee_scraped, overrides, status, created_at, updated_at FROM deals WHERE id = $1`,
	"get_deal_by_source": `SELECT id, source_url, obligor, raw, page_text, standardized, fee, previous_fee, fee_scraped, overrides, status, created_at, updated_at FROM deals WHERE source_url = $1`,
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	// Apply pool sizing from config with sensible defaults.
	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	// Prepare frequently-used statements on each new connection.
	pgxCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		for name, sql := range preparedStatements {
			if _, err := conn.Prepare(ctx, name, sql); err != nil {
				return eris.Wrapf(err, "postgres: prepare %s", name)
			}
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

// Pool returns the underlying database pool for subsystems that need direct
// query access.
func (s *PostgresStore) Pool() db.Pool {
	return s.pool
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS deals (
	id           TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	source_url   TEXT NOT NULL UNIQUE,
	obligor      TEXT,
	raw          JSONB NOT NULL,
	page_text    JSONB,
	standardized JSONB,
	fee          JSONB,
	previous_fee DOUBLE PRECISION,
	fee_scraped  BOOLEAN NOT NULL DEFAULT false,
	overrides    JSONB,
	status       TEXT NOT NULL DEFAULT 'scraped',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS fee_candidates (
	id          TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	deal_id     TEXT NOT NULL REFERENCES deals(id),
	page        INTEGER NOT NULL,
	pattern     TEXT NOT NULL,
	amount      DOUBLE PRECISION NOT NULL,
	recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_deals_status ON deals(status);
CREATE INDEX IF NOT EXISTS idx_deals_source_url ON deals(source_url);
CREATE INDEX IF NOT EXISTS idx_fee_candidates_deal_id ON fee_candidates(deal_id);
`

func (s *PostgresStore) Ping(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, "SELECT 1")
	return eris.Wrap(err, "postgres: ping")
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) CreateDeal(ctx context.Context, sourceURL, obligor string, raw model.RawFields, pageText []string) (*model.Deal, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	rawJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal raw fields")
	}
	pagesJSON, err := json.Marshal(pageText)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal page text")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO deals (id, source_url, obligor, raw, page_text, status, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, sourceURL, obligor, rawJSON, pagesJSON, string(model.DealStatusScraped), now, now,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: insert deal %s", sourceURL)
	}

	return &model.Deal{
		ID:        id,
		SourceURL: sourceURL,
		Obligor:   obligor,
		Raw:       raw,
		PageText:  pageText,
		Status:    model.DealStatusScraped,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ImportDeals bulk-upserts scraped deals keyed on source URL. Re-imported
// rows refresh their raw fields; processing results on the row survive.
func (s *PostgresStore) ImportDeals(ctx context.Context, deals []model.Deal) (int64, error) {
	if len(deals) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	rows := make([][]any, 0, len(deals))
	for _, d := range deals {
		id := d.ID
		if id == "" {
			id = uuid.New().String()
		}
		rawJSON, err := json.Marshal(d.Raw)
		if err != nil {
			return 0, eris.Wrapf(err, "postgres: marshal raw fields for %s", d.SourceURL)
		}
		pagesJSON, err := json.Marshal(d.PageText)
		if err != nil {
			return 0, eris.Wrapf(err, "postgres: marshal page text for %s", d.SourceURL)
		}
		rows = append(rows, []any{id, d.SourceURL, d.Obligor, rawJSON, pagesJSON, string(model.DealStatusScraped), now, now})
	}

	n, err := db.BulkUpsert(ctx, s.pool, db.UpsertConfig{
		Table:        "deals",
		Columns:      []string{"id", "source_url", "obligor", "raw", "page_text", "status", "created_at", "updated_at"},
		ConflictKeys: []string{"source_url"},
		UpdateCols:   []string{"obligor", "raw", "page_text", "updated_at"},
	}, rows)
	return n, eris.Wrap(err, "postgres: import deals")
}

func (s *PostgresStore) GetDeal(ctx context.Context, dealID string) (*model.Deal, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, source_url, obligor, raw, page_text, standardized, fee, previous_fee, fee_scraped, overrides, status, created_at, updated_at FROM deals WHERE id = $1`,
		dealID,
	)
	d, err := scanPgDeal(row)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get deal %s", dealID)
	}
	return d, nil
}

func (s *PostgresStore) GetDealBySource(ctx context.Context, sourceURL string) (*model.Deal, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, source_url, obligor, raw, page_text, standardized, fee, previous_fee, fee_scraped, overrides, status, created_at, updated_at FROM deals WHERE source_url = $1`,
		sourceURL,
	)
	d, err := scanPgDeal(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get deal by source %s", sourceURL)
	}
	return d, nil
}

func (s *PostgresStore) ListDeals(ctx context.Context, filter DealFilter) ([]model.Deal, error) {
	query := `SELECT id, source_url, obligor, raw, page_text, standardized, fee, previous_fee, fee_scraped, overrides, status, created_at, updated_at FROM deals WHERE true`
	args := []any{}
	argIdx := 1

	if filter.Status != "" {
		query += fmt.Sprintf(` AND status = $%d`, argIdx)
		args = append(args, string(filter.Status))
		argIdx++
	}
	if filter.SourceURL != "" {
		query += fmt.Sprintf(` AND source_url = $%d`, argIdx)
		args = append(args, filter.SourceURL)
		argIdx++
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += fmt.Sprintf(` LIMIT $%d`, argIdx)
	args = append(args, limit)
	argIdx++

	if filter.Offset > 0 {
		query += fmt.Sprintf(` OFFSET $%d`, argIdx)
		args = append(args, filter.Offset)
		argIdx++
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list deals")
	}
	defer rows.Close()

	var deals []model.Deal
	for rows.Next() {
		d, err := scanPgDeal(rows)
		if err != nil {
			return nil, eris.Wrap(err, "postgres: scan deal")
		}
		deals = append(deals, *d)
	}
	return deals, eris.Wrap(rows.Err(), "postgres: list deals iterate")
}

func (s *PostgresStore) UpdateDealStatus(ctx context.Context, dealID string, status model.DealStatus) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE deals SET status = $1, updated_at = $2 WHERE id = $3`,
		string(status), time.Now().UTC(), dealID,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: update deal status %s", dealID)
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("deal not found: %s", dealID)
	}
	return nil
}

func (s *PostgresStore) UpdateDealResult(ctx context.Context, dealID string, result *model.ProcessResult) error {
	stdJSON, feeJSON, ovrJSON, err := marshalResult(result)
	if err != nil {
		return err
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE deals SET standardized = $1, fee = $2, previous_fee = $3, fee_scraped = $4, overrides = $5, status = $6, updated_at = $7 WHERE id = $8`,
		stdJSON, feeJSON, nullableFloat(result.PreviousFee), result.FeeScraped, ovrJSON, string(result.Status), time.Now().UTC(), dealID,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: update deal result %s", dealID)
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("deal not found: %s", dealID)
	}
	return nil
}

// RecordFeeCandidates appends the matched amounts for one extraction pass to
// the audit log via COPY.
func (s *PostgresStore) RecordFeeCandidates(ctx context.Context, dealID string, candidates []model.FeeCandidate) error {
	if len(candidates) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, []any{uuid.New().String(), dealID, c.Page, c.Pattern, c.Amount})
	}
	_, err := db.CopyFrom(ctx, s.pool, "fee_candidates", []string{"id", "deal_id", "page", "pattern", "amount"}, rows)
	return eris.Wrapf(err, "postgres: record fee candidates for %s", dealID)
}

func (s *PostgresStore) ListFeeCandidates(ctx context.Context, dealID string) ([]model.FeeCandidate, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT page, pattern, amount FROM fee_candidates WHERE deal_id = $1 ORDER BY recorded_at, page`,
		dealID,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: list fee candidates for %s", dealID)
	}
	defer rows.Close()

	var out []model.FeeCandidate
	for rows.Next() {
		var c model.FeeCandidate
		if err := rows.Scan(&c.Page, &c.Pattern, &c.Amount); err != nil {
			return nil, eris.Wrap(err, "postgres: scan fee candidate")
		}
		out = append(out, c)
	}
	return out, eris.Wrap(rows.Err(), "postgres: list fee candidates iterate")
}

func scanPgDeal(row pgx.Row) (*model.Deal, error) {
	var d model.Deal
	var obligor *string
	var rawJSON []byte
	var pagesJSON, stdJSON, feeJSON, ovrJSON *[]byte
	var previousFee *float64

	err := row.Scan(&d.ID, &d.SourceURL, &obligor, &rawJSON, &pagesJSON, &stdJSON, &feeJSON,
		&previousFee, &d.FeeScraped, &ovrJSON, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if obligor != nil {
		d.Obligor = *obligor
	}
	if err := json.Unmarshal(rawJSON, &d.Raw); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal raw fields")
	}
	if pagesJSON != nil {
		if err := json.Unmarshal(*pagesJSON, &d.PageText); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal page text")
		}
	}
	if stdJSON != nil {
		d.Standardized = &model.StandardizedDeal{}
		if err := json.Unmarshal(*stdJSON, d.Standardized); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal standardized")
		}
	}
	if feeJSON != nil {
		d.Fee = &model.FeeResult{}
		if err := json.Unmarshal(*feeJSON, d.Fee); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal fee")
		}
	}
	d.PreviousFee = previousFee
	if ovrJSON != nil {
		if err := json.Unmarshal(*ovrJSON, &d.Overrides); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal overrides")
		}
	}
	return &d, nil
}
