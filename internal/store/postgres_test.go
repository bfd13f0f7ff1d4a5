package store

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/muni-cli/internal/model"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	s := &PostgresStore{pool: mock}
	return s, mock
}

func TestPostgresStore_GetDeal_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT .* FROM deals WHERE id = \$1`).
		WithArgs("nonexistent-deal").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetDeal(context.Background(), "nonexistent-deal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get deal")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetDealBySource_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT .* FROM deals WHERE source_url = \$1`).
		WithArgs("https://unknown.example.com").
		WillReturnError(pgx.ErrNoRows)

	deal, err := s.GetDealBySource(context.Background(), "https://unknown.example.com")
	require.NoError(t, err)
	assert.Nil(t, deal)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_UpdateDealStatus(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`UPDATE deals SET status = \$1`).
		WithArgs(string(model.DealStatusStandardized), pgxmock.AnyArg(), "deal-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := s.UpdateDealStatus(context.Background(), "deal-1", model.DealStatusStandardized)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_UpdateDealStatus_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`UPDATE deals SET status = \$1`).
		WithArgs(string(model.DealStatusFailed), pgxmock.AnyArg(), "missing-deal").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := s.UpdateDealStatus(context.Background(), "missing-deal", model.DealStatusFailed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deal not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_UpdateDealResult(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`UPDATE deals SET standardized = \$1`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), true, pgxmock.AnyArg(), string(model.DealStatusFeeExtracted), pgxmock.AnyArg(), "deal-2").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := s.UpdateDealResult(context.Background(), "deal-2", &model.ProcessResult{
		Fee:        &model.FeeResult{Total: 1444.0},
		FeeScraped: true,
		Status:     model.DealStatusFeeExtracted,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_RecordFeeCandidates_Copy(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectCopyFrom(pgx.Identifier{"fee_candidates"}, []string{"id", "deal_id", "page", "pattern", "amount"}).
		WillReturnResult(2)

	err := s.RecordFeeCandidates(context.Background(), "deal-3", []model.FeeCandidate{
		{Page: 3, Pattern: "of", Amount: 1444.0},
		{Page: 7, Pattern: "will_pay", Amount: 98000.0},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_RecordFeeCandidates_Empty(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	require.NoError(t, s.RecordFeeCandidates(context.Background(), "deal-4", nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown driver")
}
