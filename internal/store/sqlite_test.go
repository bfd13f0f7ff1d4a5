package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/muni-cli/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func testRawFields() model.RawFields {
	return model.RawFields{
		LeadManagers:      []string{"Stifel, Nicolaus & Company"},
		CoManagers:        []string{"Baird"},
		MunicipalAdvisors: []string{"Ehlers and Associates"},
		Counsels:          []string{"Gilmore & Bell"},
		OSType:            model.OSTypeOfficialStatement,
		OSFilePath:        "os/abc123.pdf",
	}
}

func TestSQLite_CreateAndGetDeal(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	created, err := st.CreateDeal(ctx, "https://www.munios.com/deal/abc", "City of Example", testRawFields(), []string{"page one", "page two"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, model.DealStatusScraped, created.Status)

	got, err := st.GetDeal(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://www.munios.com/deal/abc", got.SourceURL)
	assert.Equal(t, "City of Example", got.Obligor)
	assert.Equal(t, testRawFields(), got.Raw)
	assert.Equal(t, []string{"page one", "page two"}, got.PageText)
	assert.Nil(t, got.Standardized)
	assert.Nil(t, got.Fee)
	assert.False(t, got.FeeScraped)
}

func TestSQLite_GetDeal_NotFound(t *testing.T) {
	st := newTestSQLiteStore(t)

	_, err := st.GetDeal(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deal not found")
}

func TestSQLite_GetDealBySource(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	created, err := st.CreateDeal(ctx, "https://www.munios.com/deal/xyz", "", testRawFields(), nil)
	require.NoError(t, err)

	got, err := st.GetDealBySource(ctx, "https://www.munios.com/deal/xyz")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
}

func TestSQLite_GetDealBySource_Missing(t *testing.T) {
	st := newTestSQLiteStore(t)

	got, err := st.GetDealBySource(context.Background(), "https://unknown.example.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLite_UpdateDealStatus(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	created, err := st.CreateDeal(ctx, "https://www.munios.com/deal/s", "", testRawFields(), nil)
	require.NoError(t, err)

	require.NoError(t, st.UpdateDealStatus(ctx, created.ID, model.DealStatusStandardized))

	got, err := st.GetDeal(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DealStatusStandardized, got.Status)
}

func TestSQLite_UpdateDealStatus_NotFound(t *testing.T) {
	st := newTestSQLiteStore(t)

	err := st.UpdateDealStatus(context.Background(), "nonexistent", model.DealStatusFailed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deal not found")
}

func TestSQLite_UpdateDealResult_RoundTrip(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	created, err := st.CreateDeal(ctx, "https://www.munios.com/deal/r", "", testRawFields(), []string{"text"})
	require.NoError(t, err)

	prev := 98000.0
	result := &model.ProcessResult{
		Standardized: &model.StandardizedDeal{
			LeadManagers: []string{"Stifel"},
			Raw:          testRawFields(),
		},
		Fee: &model.FeeResult{
			Total: 1444.0,
			Breakdown: model.FeeBreakdown{
				Amounts:             []float64{1444.0, 1444.0},
				AreAmountsIdentical: true,
			},
		},
		PreviousFee: &prev,
		FeeScraped:  true,
		Overrides: []model.FieldChange{
			{Field: "os_type", Previous: "", Absent: true, Applied: model.OSTypeOfficialStatement},
		},
		Status: model.DealStatusFeeExtracted,
	}
	require.NoError(t, st.UpdateDealResult(ctx, created.ID, result))

	got, err := st.GetDeal(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Standardized)
	assert.Equal(t, []string{"Stifel"}, got.Standardized.LeadManagers)
	require.NotNil(t, got.Fee)
	assert.Equal(t, 1444.0, got.Fee.Total)
	assert.True(t, got.Fee.Breakdown.AreAmountsIdentical)
	require.NotNil(t, got.PreviousFee)
	assert.Equal(t, 98000.0, *got.PreviousFee)
	assert.True(t, got.FeeScraped)
	require.Len(t, got.Overrides, 1)
	assert.True(t, got.Overrides[0].Absent)
	assert.Equal(t, model.DealStatusFeeExtracted, got.Status)
}

func TestSQLite_ImportDeals_InsertsNewRows(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	n, err := st.ImportDeals(ctx, []model.Deal{
		{SourceURL: "https://www.munios.com/deal/1", Raw: testRawFields()},
		{SourceURL: "https://www.munios.com/deal/2", Raw: testRawFields()},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	deals, err := st.ListDeals(ctx, DealFilter{})
	require.NoError(t, err)
	assert.Len(t, deals, 2)
}

func TestSQLite_ImportDeals_RefreshKeepsResults(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	created, err := st.CreateDeal(ctx, "https://www.munios.com/deal/keep", "Old Obligor", testRawFields(), nil)
	require.NoError(t, err)
	require.NoError(t, st.UpdateDealResult(ctx, created.ID, &model.ProcessResult{
		Fee:        &model.FeeResult{Total: 5000.0},
		FeeScraped: true,
		Status:     model.DealStatusFeeExtracted,
	}))

	updated := testRawFields()
	updated.LeadManagers = []string{"Raymond James"}
	_, err = st.ImportDeals(ctx, []model.Deal{
		{SourceURL: "https://www.munios.com/deal/keep", Obligor: "New Obligor", Raw: updated},
	})
	require.NoError(t, err)

	got, err := st.GetDeal(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Obligor", got.Obligor)
	assert.Equal(t, []string{"Raymond James"}, got.Raw.LeadManagers)
	// Processing results and status survive a re-import.
	require.NotNil(t, got.Fee)
	assert.Equal(t, 5000.0, got.Fee.Total)
	assert.Equal(t, model.DealStatusFeeExtracted, got.Status)
}

func TestSQLite_ImportDeals_Empty(t *testing.T) {
	st := newTestSQLiteStore(t)

	n, err := st.ImportDeals(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestSQLite_ListDeals_FilterByStatus(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	d1, err := st.CreateDeal(ctx, "https://www.munios.com/deal/a", "", testRawFields(), nil)
	require.NoError(t, err)
	_, err = st.CreateDeal(ctx, "https://www.munios.com/deal/b", "", testRawFields(), nil)
	require.NoError(t, err)
	require.NoError(t, st.UpdateDealStatus(ctx, d1.ID, model.DealStatusFailed))

	failed, err := st.ListDeals(ctx, DealFilter{Status: model.DealStatusFailed})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, d1.ID, failed[0].ID)

	scraped, err := st.ListDeals(ctx, DealFilter{Status: model.DealStatusScraped})
	require.NoError(t, err)
	assert.Len(t, scraped, 1)
}

func TestSQLite_ListDeals_Limit(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	for _, u := range []string{"https://x.com/1", "https://x.com/2", "https://x.com/3"} {
		_, err := st.CreateDeal(ctx, u, "", testRawFields(), nil)
		require.NoError(t, err)
	}

	deals, err := st.ListDeals(ctx, DealFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, deals, 2)
}

func TestSQLite_FeeCandidates_RecordAndList(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	created, err := st.CreateDeal(ctx, "https://www.munios.com/deal/fc", "", testRawFields(), nil)
	require.NoError(t, err)

	cands := []model.FeeCandidate{
		{Page: 3, Pattern: "of", Amount: 1444.0},
		{Page: 7, Pattern: "before_discount", Amount: 98000.0},
	}
	require.NoError(t, st.RecordFeeCandidates(ctx, created.ID, cands))

	got, err := st.ListFeeCandidates(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, cands, got)
}

func TestSQLite_FeeCandidates_EmptyNoOp(t *testing.T) {
	st := newTestSQLiteStore(t)

	require.NoError(t, st.RecordFeeCandidates(context.Background(), "whatever", nil))
}
