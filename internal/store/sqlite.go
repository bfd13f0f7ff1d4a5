package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/muni-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS deals (
	id           TEXT PRIMARY KEY,
	source_url   TEXT NOT NULL UNIQUE,
	obligor      TEXT,
	raw          TEXT NOT NULL,
	page_text    TEXT,
	standardized TEXT,
	fee          TEXT,
	previous_fee REAL,
	fee_scraped  INTEGER NOT NULL DEFAULT 0,
	overrides    TEXT,
	status       TEXT NOT NULL DEFAULT 'scraped',
	created_at   DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at   DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS fee_candidates (
	id          TEXT PRIMARY KEY,
	deal_id     TEXT NOT NULL REFERENCES deals(id),
	page        INTEGER NOT NULL,
	pattern     TEXT NOT NULL,
	amount      REAL NOT NULL,
	recorded_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_deals_status ON deals(status);
CREATE INDEX IF NOT EXISTS idx_deals_source_url ON deals(source_url);
CREATE INDEX IF NOT EXISTS idx_fee_candidates_deal_id ON fee_candidates(deal_id);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateDeal(ctx context.Context, sourceURL, obligor string, raw model.RawFields, pageText []string) (*model.Deal, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	rawJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal raw fields")
	}
	pagesJSON, err := json.Marshal(pageText)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal page text")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO deals (id, source_url, obligor, raw, page_text, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, sourceURL, obligor, string(rawJSON), string(pagesJSON), string(model.DealStatusScraped), now, now,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: insert deal %s", sourceURL)
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

func (s *SQLiteStore) ImportDeals(ctx context.Context, deals []model.Deal) (int64, error) {
	if len(deals) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: import begin tx")
	}
	defer tx.Rollback()

	var n int64
	now := time.Now().UTC()
	for _, d := range deals {
		id := d.ID
		if id == "" {
			id = uuid.New().String()
		}
		rawJSON, err := json.Marshal(d.Raw)
		if err != nil {
			return 0, eris.Wrapf(err, "sqlite: marshal raw fields for %s", d.SourceURL)
		}
		pagesJSON, err := json.Marshal(d.PageText)
		if err != nil {
			return 0, eris.Wrapf(err, "sqlite: marshal page text for %s", d.SourceURL)
		}

		// Re-importing a scraped deal refreshes its raw fields but never
		// clobbers processing results already on the row.
		res, err := tx.ExecContext(ctx,
			`INSERT INTO deals (id, source_url, obligor, raw, page_text, status, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(source_url) DO UPDATE SET
				obligor = excluded.obligor,
				raw = excluded.raw,
				page_text = excluded.page_text,
				updated_at = excluded.updated_at`,
			id, d.SourceURL, d.Obligor, string(rawJSON), string(pagesJSON), string(model.DealStatusScraped), now, now,
		)
		if err != nil {
			return 0, eris.Wrapf(err, "sqlite: import deal %s", d.SourceURL)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return 0, eris.Wrap(err, "sqlite: import rows affected")
		}
		n += rows
	}

	if err := tx.Commit(); err != nil {
		return 0, eris.Wrap(err, "sqlite: import commit tx")
	}
	return n, nil
}

const sqliteDealColumns = `id, source_url, obligor, raw, page_text, standardized, fee, previous_fee, fee_scraped, overrides, status, created_at, updated_at`

func (s *SQLiteStore) GetDeal(ctx context.Context, dealID string) (*model.Deal, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+sqliteDealColumns+` FROM deals WHERE id = ?`,
		dealID,
	)
	d, err := scanDeal(row)
	if err == sql.ErrNoRows {
		return nil, eris.Errorf("deal not found: %s", dealID)
	}
	return d, err
}

func (s *SQLiteStore) GetDealBySource(ctx context.Context, sourceURL string) (*model.Deal, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+sqliteDealColumns+` FROM deals WHERE source_url = ?`,
		sourceURL,
	)
	d, err := scanDeal(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return d, err
}

func (s *SQLiteStore) ListDeals(ctx context.Context, filter DealFilter) ([]model.Deal, error) {
	query := `SELECT ` + sqliteDealColumns + ` FROM deals WHERE 1=1`
	var args []any

	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, string(filter.Status))
	}
	if filter.SourceURL != "" {
		query += ` AND source_url = ?`
		args = append(args, filter.SourceURL)
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list deals")
	}
	defer rows.Close()

	var deals []model.Deal
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, err
		}
		deals = append(deals, *d)
	}
	return deals, eris.Wrap(rows.Err(), "sqlite: list deals iterate")
}

func (s *SQLiteStore) UpdateDealStatus(ctx context.Context, dealID string, status model.DealStatus) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE deals SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC(), dealID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: update deal status %s", dealID)
	}
	return checkRowsAffected(res, "deal", dealID)
}

func (s *SQLiteStore) UpdateDealResult(ctx context.Context, dealID string, result *model.ProcessResult) error {
	stdJSON, feeJSON, ovrJSON, err := marshalResult(result)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE deals SET standardized = ?, fee = ?, previous_fee = ?, fee_scraped = ?, overrides = ?, status = ?, updated_at = ?
		 WHERE id = ?`,
		stdJSON, feeJSON, nullableFloat(result.PreviousFee), result.FeeScraped, ovrJSON, string(result.Status), time.Now().UTC(), dealID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: update deal result %s", dealID)
	}
	return checkRowsAffected(res, "deal", dealID)
}

func (s *SQLiteStore) RecordFeeCandidates(ctx context.Context, dealID string, candidates []model.FeeCandidate) error {
	if len(candidates) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: record candidates begin tx")
	}
	defer tx.Rollback()

	for _, c := range candidates {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO fee_candidates (id, deal_id, page, pattern, amount) VALUES (?, ?, ?, ?, ?)`,
			uuid.New().String(), dealID, c.Page, c.Pattern, c.Amount,
		)
		if err != nil {
			return eris.Wrapf(err, "sqlite: insert fee candidate for %s", dealID)
		}
	}
	return eris.Wrap(tx.Commit(), "sqlite: record candidates commit tx")
}

func (s *SQLiteStore) ListFeeCandidates(ctx context.Context, dealID string) ([]model.FeeCandidate, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT page, pattern, amount FROM fee_candidates WHERE deal_id = ? ORDER BY recorded_at, page`,
		dealID,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: list fee candidates for %s", dealID)
	}
	defer rows.Close()

	var out []model.FeeCandidate
	for rows.Next() {
		var c model.FeeCandidate
		if err := rows.Scan(&c.Page, &c.Pattern, &c.Amount); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan fee candidate")
		}
		out = append(out, c)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: list fee candidates iterate")
}

// helpers

func checkRowsAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "sqlite: rows affected")
	}
	if n == 0 {
		return eris.Errorf("%s not found: %s", entity, id)
	}
	return nil
}

func nullableFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

// marshalResult serializes the JSON-blob columns of a process result.
// Absent parts become NULL rather than the string "null".
func marshalResult(result *model.ProcessResult) (std, fee, ovr any, err error) {
	if result.Standardized != nil {
		b, err := json.Marshal(result.Standardized)
		if err != nil {
			return nil, nil, nil, eris.Wrap(err, "store: marshal standardized")
		}
		std = string(b)
	}
	if result.Fee != nil {
		b, err := json.Marshal(result.Fee)
		if err != nil {
			return nil, nil, nil, eris.Wrap(err, "store: marshal fee")
		}
		fee = string(b)
	}
	if len(result.Overrides) > 0 {
		b, err := json.Marshal(result.Overrides)
		if err != nil {
			return nil, nil, nil, eris.Wrap(err, "store: marshal overrides")
		}
		ovr = string(b)
	}
	return std, fee, ovr, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanDeal(row scannable) (*model.Deal, error) {
	var d model.Deal
	var obligor, rawJSON, pagesJSON, stdJSON, feeJSON, ovrJSON sql.NullString
	var previousFee sql.NullFloat64

	err := row.Scan(&d.ID, &d.SourceURL, &obligor, &rawJSON, &pagesJSON, &stdJSON, &feeJSON,
		&previousFee, &d.FeeScraped, &ovrJSON, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan deal")
	}

	d.Obligor = obligor.String
	if rawJSON.Valid {
		if err := json.Unmarshal([]byte(rawJSON.String), &d.Raw); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal raw fields")
		}
	}
	if pagesJSON.Valid {
		if err := json.Unmarshal([]byte(pagesJSON.String), &d.PageText); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal page text")
		}
	}
	if stdJSON.Valid {
		d.Standardized = &model.StandardizedDeal{}
		if err := json.Unmarshal([]byte(stdJSON.String), d.Standardized); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal standardized")
		}
	}
	if feeJSON.Valid {
		d.Fee = &model.FeeResult{}
		if err := json.Unmarshal([]byte(feeJSON.String), d.Fee); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal fee")
		}
	}
	if previousFee.Valid {
		d.PreviousFee = &previousFee.Float64
	}
	if ovrJSON.Valid {
		if err := json.Unmarshal([]byte(ovrJSON.String), &d.Overrides); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal overrides")
		}
	}
	return &d, nil
}
