package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpulse/insights/pkg/db"
)

func TestStateReport(t *testing.T) {
	store := &fakeStore{
		reportTransactions: []db.ReportTransactionRow{
			{Year: 2021, Quarter: 1, TransactionType: "p2p", Transactions: 10, Amount: 100},
		},
		reportBrands: []db.ReportBrandRow{
			{Year: 2021, Brand: "acme", TotalUsers: 50},
		},
		reportDistricts: []db.ReportDistrictRow{
			{District: "north", TotalTransactions: 5, TotalAmount: 50},
		},
		// Insurance and pincode tables have no rows for this state.
	}
	engine := newTestEngine(t, store)

	report, err := engine.StateReport(context.Background(), "alpha")
	require.NoError(t, err)
	assert.Equal(t, "alpha", report.State)
	assert.Len(t, report.Transactions, 1)
	assert.Len(t, report.Users, 1)
	assert.Len(t, report.Districts, 1)

	// Empty sections are present as empty slices, never nil.
	require.NotNil(t, report.Insurance)
	assert.Empty(t, report.Insurance)
	require.NotNil(t, report.TopPincodes)
	assert.Empty(t, report.TopPincodes)
}

func TestStateReportSectionError(t *testing.T) {
	cause := errors.New("district join failed")
	store := &fakeStore{
		reportTransactions: []db.ReportTransactionRow{{Year: 2021, Quarter: 1}},
		reportDistrictsErr: cause,
	}
	engine := newTestEngine(t, store)

	_, err := engine.StateReport(context.Background(), "alpha")
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}

func TestStateReportNullableJoinSides(t *testing.T) {
	users := uint64(120)
	store := &fakeStore{
		reportDistricts: []db.ReportDistrictRow{
			{District: "mapped", TotalAmount: 10, TotalUsers: &users},
			{District: "unmapped", TotalAmount: 5, TotalUsers: nil},
		},
	}
	engine := newTestEngine(t, store)

	report, err := engine.StateReport(context.Background(), "alpha")
	require.NoError(t, err)
	require.Len(t, report.Districts, 2)
	require.NotNil(t, report.Districts[0].TotalUsers)
	assert.Equal(t, uint64(120), *report.Districts[0].TotalUsers)
	assert.Nil(t, report.Districts[1].TotalUsers)
}
